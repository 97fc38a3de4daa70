package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"placement-service/internal/fitcheck/floorplan"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Floor-Plan Import
// ============================================================

// ImportRoom converts an uploaded SVG floor plan into room geometry.
// Optional query parameters: room_id, height_cm, scale.
func (h *FitCheckHandler) ImportRoom(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "file required in multipart/form-data",
		})
	}

	opts := floorplan.ImportOptions{RoomID: c.Query("room_id")}
	if opts.HeightCM, err = queryFloat(c, "height_cm"); err != nil {
		return badRequest(c, err)
	}
	if opts.Scale, err = queryFloat(c, "scale"); err != nil {
		return badRequest(c, err)
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to open file"})
	}
	defer f.Close()

	room, err := floorplan.RoomFromSVG(f, opts)
	if errors.Is(err, floorplan.ErrNoRoom) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if err != nil {
		h.log.Warn().Err(err).Str("filename", file.Filename).Msg("floor plan import failed")
		return badRequest(c, err)
	}

	h.log.Info().
		Str("filename", file.Filename).
		Int("openings", len(room.Openings)).
		Msg("floor plan imported")

	return c.JSON(fiber.Map{"success": true, "data": room})
}

func queryFloat(c fiber.Ctx, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, errors.New(key + " must be a non-negative number")
	}
	return v, nil
}
