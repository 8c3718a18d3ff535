package handlers

import (
	"net/http"

	"libraryhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler reports whether the store and the session cache answer.
type HealthHandler struct {
	MongoPing utils.PingFunc
	RedisPing utils.PingFunc
}

func NewHealthHandler(mongoPing, redisPing utils.PingFunc) *HealthHandler {
	return &HealthHandler{MongoPing: mongoPing, RedisPing: redisPing}
}

// HealthCheckHandler handles GET /health.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(), h.MongoPing, h.RedisPing)
	if !status.Healthy() {
		zap.L().Warn("Health check degraded", zap.Bool("mongo", status.Mongo), zap.Bool("redis", status.Redis))
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
