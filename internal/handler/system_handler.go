package handler

import (
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// SystemHandler handles health and liveness endpoints.
type SystemHandler struct {
	db    *sqlx.DB
	cache domain.Cache
}

// NewSystemHandler creates a new SystemHandler instance
func NewSystemHandler(db *sqlx.DB, cache domain.Cache) *SystemHandler {
	return &SystemHandler{db: db, cache: cache}
}

// Healthcheck godoc
// @Summary Service healthcheck
// @Description Reports service status and pings the database and cache
// @Tags system
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /system/healthcheck [get]
func (h *SystemHandler) Healthcheck(c *fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.PingContext(c.Context()); err != nil {
			logger.Get().Error("Healthcheck: database ping failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.StatusResponse{Status: "SYSTEM_DEGRADED"})
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			logger.Get().Error("Healthcheck: cache ping failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.StatusResponse{Status: "SYSTEM_DEGRADED"})
		}
	}
	return c.JSON(dto.StatusResponse{Status: "SYSTEM_ONLINE"})
}
