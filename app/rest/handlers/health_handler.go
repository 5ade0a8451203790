package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ReadinessCheck reports readiness of a downstream dependency.
type ReadinessCheck func(ctx context.Context) error

// HealthHandler handles health check requests
type HealthHandler struct {
	checks map[string]ReadinessCheck
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checks map[string]ReadinessCheck, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// HealthCheck handles GET /v1/health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "auth-gateway",
		"timestamp": time.Now().UTC(),
	})
}

// ReadinessCheck handles GET /v1/ready
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("readiness check failed", "dependency", name, "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "not_ready",
				"failed": name,
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"status": "ready"})
}

// LivenessCheck handles GET /v1/live
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "alive"})
}
