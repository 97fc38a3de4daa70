package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"placement-service/internal/fitcheck/checker"
	"placement-service/internal/fitcheck/models"
	"placement-service/internal/fitcheck/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ============================================================
// Fit-Check Handler
// ============================================================

const storageTimeout = 5 * time.Second

type FitCheckHandler struct {
	checker *checker.Checker
	reports *repository.Repository
	log     zerolog.Logger
}

// NewFitCheckHandler wires the engine to HTTP. reports may be nil, in which
// case results are not recorded.
func NewFitCheckHandler(c *checker.Checker, reports *repository.Repository, log zerolog.Logger) *FitCheckHandler {
	return &FitCheckHandler{
		checker: c,
		reports: reports,
		log:     log.With().Str("component", "fitcheck").Logger(),
	}
}

type fitCheckResponse struct {
	Success          bool                  `json:"success"`
	Data             models.FitCheckResult `json:"data"`
	RequestID        string                `json:"request_id"`
	ReportID         string                `json:"report_id,omitempty"`
	ProcessingTimeMS int64                 `json:"processing_time_ms"`
}

// CheckFit runs every validation pass over the posted layout.
func (h *FitCheckHandler) CheckFit(c fiber.Ctx) error {
	start := time.Now()

	req, err := decodeRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	h.log.Info().
		Str("request_id", req.RequestID).
		Int("furniture_count", len(req.FurnitureItems)).
		Str("room_type", req.Options.RoomType).
		Msg("fit check started")

	result := h.checker.CheckFit(req.RoomGeometry, req.FurnitureItems, req.Options)
	reportID := h.record(req, result)

	elapsed := time.Since(start)
	h.log.Info().
		Str("request_id", req.RequestID).
		Bool("passed", result.Passed).
		Int("score", result.Score).
		Int("issue_count", len(result.Issues)).
		Dur("duration", elapsed).
		Msg("fit check completed")

	return c.JSON(fitCheckResponse{
		Success:          true,
		Data:             result,
		RequestID:        req.RequestID,
		ReportID:         reportID,
		ProcessingTimeMS: elapsed.Milliseconds(),
	})
}

// ValidatePlacement runs the boundary pass only.
func (h *FitCheckHandler) ValidatePlacement(c fiber.Ctx) error {
	start := time.Now()

	req, err := decodeRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	result := h.checker.ValidatePlacement(req.RoomGeometry, req.FurnitureItems)

	return c.JSON(fitCheckResponse{
		Success:          true,
		Data:             result,
		RequestID:        req.RequestID,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	})
}

// Rules exposes the loaded rule configuration.
func (h *FitCheckHandler) Rules(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.checker.Rules().Raw(),
	})
}

// GetReport returns a stored report summary.
func (h *FitCheckHandler) GetReport(c fiber.Ctx) error {
	if h.reports == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"success": false, "error": "report log disabled"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	report, err := h.reports.GetByID(ctx, c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"success": false, "error": "report not found"})
	}
	if err != nil {
		h.log.Error().Err(err).Str("report_id", c.Params("id")).Msg("load report")
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to load report"})
	}

	return c.JSON(fiber.Map{"success": true, "data": report})
}

// record stores a report when the log is enabled. A storage failure is
// logged and leaves the response without a report id.
func (h *FitCheckHandler) record(req models.FitCheckRequest, result models.FitCheckResult) string {
	if h.reports == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	report := repository.NewReport(req.RequestID, req.Options.RoomType, result)
	if err := h.reports.Save(ctx, report); err != nil {
		h.log.Error().Err(err).Str("request_id", req.RequestID).Msg("save report")
		return ""
	}
	return report.ID
}

// ============================================================
// Helpers
// ============================================================

func decodeRequest(c fiber.Ctx) (models.FitCheckRequest, error) {
	var req models.FitCheckRequest
	if len(c.Body()) == 0 {
		return req, errors.New("empty body")
	}
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return req, errors.New("invalid json")
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	return req, nil
}

func badRequest(c fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
