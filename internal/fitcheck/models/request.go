package models

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest wraps every structural problem found in a FitCheckRequest.
var ErrInvalidRequest = errors.New("invalid fit-check request")

// FitCheckRequest is the payload accepted by the service and the layout file
// read by the CLI.
type FitCheckRequest struct {
	RequestID      string          `json:"requestId,omitempty"`
	RoomGeometry   RoomGeometry    `json:"roomGeometry"`
	FurnitureItems []FurnitureItem `json:"furnitureItems"`
	Options        FitCheckOptions `json:"options"`
}

// Validate rejects payloads the engine cannot evaluate. Layout problems such
// as overlaps are not errors here; they become issues in the result.
func (r FitCheckRequest) Validate() error {
	if err := r.RoomGeometry.Validate(); err != nil {
		return err
	}
	for i, item := range r.FurnitureItems {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("furnitureItems[%d]: %w", i, err)
		}
	}
	return nil
}

func (g RoomGeometry) Validate() error {
	if g.Width <= 0 || g.Length <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: room dimensions must be positive", ErrInvalidRequest)
	}
	for i, o := range g.Openings {
		switch o.Position.Wall {
		case WallNorth, WallSouth, WallEast, WallWest:
		default:
			return fmt.Errorf("%w: openings[%d]: unknown wall %q", ErrInvalidRequest, i, o.Position.Wall)
		}
		switch o.Type {
		case OpeningDoor, OpeningWindow, OpeningArchway:
		default:
			return fmt.Errorf("%w: openings[%d]: unknown type %q", ErrInvalidRequest, i, o.Type)
		}
	}
	return nil
}

func (f FurnitureItem) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: product_id is required", ErrInvalidRequest)
	}
	d := f.Dimensions
	if d.Width <= 0 || d.Length <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %s: dimensions must be positive", ErrInvalidRequest, f.ID)
	}
	return nil
}
