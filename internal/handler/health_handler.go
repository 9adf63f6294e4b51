package handler

import (
	"quiz-session/internal/domain"
	"quiz-session/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports service liveness and cache connectivity.
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a new HealthHandler instance. cache may be
// nil when the service runs without Redis.
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Service health
// @Description Reports liveness; when a cache is configured it is pinged and reported as up, down or disabled
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "up"
		if err := h.cache.Ping(c.Context()); err != nil {
			logger.Get().Warn("Cache ping failed", zap.Error(err))
			cacheStatus = "down"
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"cache":  cacheStatus,
	})
}
