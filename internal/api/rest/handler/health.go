package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/shopkeep-server/internal/logger"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health serves the service index and health check.
type Health struct {
	pinger      Pinger
	projectName string
	version     string
	logger      *logger.Logger
}

func NewHealth(pinger Pinger, projectName, version string, logger *logger.Logger) *Health {
	return &Health{
		pinger:      pinger,
		projectName: projectName,
		version:     version,
		logger:      logger,
	}
}

func (h *Health) Check(c echo.Context) error {
	if err := h.pinger.Ping(c.Request().Context()); err != nil {
		h.logger.Error("Health handler: database unreachable",
			"error", err.Error())
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Message: h.projectName + " is unavailable",
			Version: h.version,
			Status:  "error",
		})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Message: "Welcome to " + h.projectName,
		Version: h.version,
		Status:  "success",
	})
}
