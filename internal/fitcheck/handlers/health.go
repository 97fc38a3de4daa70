package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

func (h *FitCheckHandler) LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// ReadinessProbe also pings the report database when one is configured.
func (h *FitCheckHandler) ReadinessProbe(c fiber.Ctx) error {
	if h.reports != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := h.reports.Ping(ctx); err != nil {
			h.log.Warn().Err(err).Msg("readiness: report db unreachable")
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "not ready"})
		}
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// Health is a single status document for clients that poll one endpoint.
func (h *FitCheckHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "healthy",
		"service":         "fit-check",
		"reports_enabled": h.reports != nil,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}
