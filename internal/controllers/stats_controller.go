package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	links LinksCounter
}

func NewStatsController(links LinksCounter) *StatsController {
	return &StatsController{links: links}
}

type statsResponse struct {
	Links int64 `json:"links"`
}

// Stats обрабатывает GET /stats: количество сохраненных ссылок.
func (c *StatsController) Stats(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	total, err := c.links.Count(reqCtx)
	if err != nil {
		_ = ctx.Error(fmt.Errorf("count links: %w", err))
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, statsResponse{Links: total})
}
