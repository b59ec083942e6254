package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// loggerMiddleware логирует каждый запрос к служебному серверу. Должен быть первым после Recovery.
func loggerMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	if logger == nil {
		return func(c *gin.Context) { c.Next() }
	}
	entry := logger.WithField("module", "controllers")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		statusCode := c.Writer.Status()
		l := entry.WithFields(logrus.Fields{
			"path":    c.FullPath(),
			"method":  c.Request.Method,
			"status":  statusCode,
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
		})
		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			l = l.WithField("error", errorMessage)
		}

		switch {
		case statusCode >= http.StatusInternalServerError:
			l.Error("Server error")
		case statusCode >= http.StatusBadRequest:
			l.Warn("Client error")
		default:
			l.Debug("Request processed")
		}
	}
}
