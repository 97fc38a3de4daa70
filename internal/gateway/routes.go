package gateway

import (
	"fmt"
	"net/url"

	"placement-service/internal/gateway/handlers"
	"placement-service/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Gateway Routes
// ============================================================

// Register mounts the probes, API docs and the /api/v1 routes forwarded to
// the fit-check service at fitCheckURL.
func Register(app *fiber.App, p *proxy.Proxy, fitCheckURL string) {
	probes := handlers.NewProbes(nil, fitCheckURL)
	app.Get("/health/live", probes.Liveness)
	app.Get("/health/ready", probes.Readiness)
	app.Get("/health/startup", probes.Startup)

	app.Get("/docs", handlers.SwaggerUI)
	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec)

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Fit-Check API v1",
			"status":  "ok",
		})
	})

	api.Post("/fit-check", p.To(fitCheckURL+"/fit-check"))
	api.Post("/fit-check/placement", p.To(fitCheckURL+"/fit-check/placement"))
	api.Get("/fit-checker/rules", p.To(fitCheckURL+"/fit-checker/rules"))
	api.Get("/fit-check/reports/:id", func(c fiber.Ctx) error {
		return p.Forward(c, fmt.Sprintf("%s/fit-check/reports/%s", fitCheckURL, url.PathEscape(c.Params("id"))))
	})
	api.Post("/rooms/import", func(c fiber.Ctx) error {
		return p.Forward(c, fmt.Sprintf("%s/rooms/import?%s", fitCheckURL, c.Request().URI().QueryString()))
	})
}
