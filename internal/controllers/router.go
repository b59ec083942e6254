package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterParams struct {
	PingService ConnectionChecker
	Links       LinksCounter
	Logger      *logrus.Logger
}

// SetupRouter роутер служебного http сервера бота.
func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggerMiddleware(params.Logger))

	r.GET("/ping", NewPingController(params.PingService).Ping)
	r.GET("/stats", NewStatsController(params.Links).Stats)
	return r
}
