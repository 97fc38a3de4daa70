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

const upstreamProbeTimeout = 2 * time.Second

// Probes answers the gateway's health checks. Readiness follows the
// fit-check service, since the gateway cannot serve any route without it.
type Probes struct {
	client   *http.Client
	upstream string
}

// NewProbes checks readiness against upstreamURL; a nil client gets a
// default with the probe timeout.
func NewProbes(client *http.Client, upstreamURL string) *Probes {
	if client == nil {
		client = &http.Client{Timeout: upstreamProbeTimeout}
	}
	return &Probes{client: client, upstream: upstreamURL}
}

func (p *Probes) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// Readiness is ready only while the fit-check service's /health/ready answers 2xx.
func (p *Probes) Readiness(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), upstreamProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.upstream+"/health/ready", nil)
	if err != nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "not ready", "error": err.Error()})
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "not ready", "error": "fit-check service unreachable"})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status":          "not ready",
			"upstream_status": resp.StatusCode,
		})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

func (p *Probes) Startup(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "started"})
}
