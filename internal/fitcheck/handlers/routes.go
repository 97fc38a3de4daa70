package handlers

import "github.com/gofiber/fiber/v3"

// Register mounts the fit-check routes on router.
func (h *FitCheckHandler) Register(router fiber.Router) {
	router.Get("/health", h.Health)
	router.Get("/health/live", h.LivenessProbe)
	router.Get("/health/ready", h.ReadinessProbe)

	router.Post("/fit-check", h.CheckFit)
	router.Post("/fit-check/placement", h.ValidatePlacement)
	router.Get("/fit-check/reports/:id", h.GetReport)
	router.Get("/fit-checker/rules", h.Rules)
	router.Post("/rooms/import", h.ImportRoom)
}
