package floorplan

import (
	"errors"
	"fmt"
	"io"
	"math"

	"placement-service/internal/fitcheck/models"

	"github.com/paulmach/orb"
)

// ============================================================
// Room import
// ============================================================

// ErrNoRoom is returned when the plan holds no matching room element.
var ErrNoRoom = errors.New("no room element in floor plan")

const (
	DefaultRoomHeightCM = 270.0

	// Openings whose centre is further than this from every wall are dropped.
	wallSnapTolerance = 30.0

	doorHeightCM   = 215.0
	windowHeightCM = 100.0
)

type ImportOptions struct {
	// RoomID selects a room element; empty picks the largest room.
	RoomID string
	// HeightCM is the ceiling height; zero means DefaultRoomHeightCM.
	HeightCM float64
	// Scale converts SVG units to centimetres; zero means 1.
	Scale float64
}

// RoomFromSVG builds a RoomGeometry from an SVG floor plan. The room's corner
// becomes the origin and the SVG y axis is flipped, so the top of the drawing
// is the north wall.
func RoomFromSVG(r io.Reader, opts ImportOptions) (models.RoomGeometry, error) {
	elements, err := ParseSVG(r)
	if err != nil {
		return models.RoomGeometry{}, fmt.Errorf("parse SVG: %w", err)
	}
	return RoomFromElements(elements, opts)
}

func RoomFromElements(elements []Element, opts ImportOptions) (models.RoomGeometry, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	height := opts.HeightCM
	if height <= 0 {
		height = DefaultRoomHeightCM
	}

	roomElem, ok := pickRoom(elements, opts.RoomID)
	if !ok {
		return models.RoomGeometry{}, ErrNoRoom
	}

	bound := roomElem.Bound
	room := models.RoomGeometry{
		Width:    (bound.Right() - bound.Left()) * scale,
		Length:   (bound.Top() - bound.Bottom()) * scale,
		Height:   height,
		Openings: []models.Opening{},
	}

	for _, elem := range elements {
		if elem.Kind == KindRoom {
			continue
		}
		center := elem.Bound.Center()
		local := orb.Point{
			(center.X() - bound.Left()) * scale,
			(bound.Top() - center.Y()) * scale,
		}
		wall, offset, dist := nearestWall(room, local)
		if dist > wallSnapTolerance*scale {
			continue
		}

		width := math.Max(elem.Bound.Right()-elem.Bound.Left(), elem.Bound.Top()-elem.Bound.Bottom()) * scale
		room.Openings = append(room.Openings, models.Opening{
			Type:       elem.Kind.openingType(),
			Position:   models.OpeningPosition{Wall: wall, DistanceFromCorner: offset},
			Dimensions: models.OpeningDimensions{Width: width, Height: openingHeight(elem.Kind, height)},
		})
	}

	return room, nil
}

func pickRoom(elements []Element, id string) (Element, bool) {
	var best Element
	found := false
	bestArea := -1.0

	for _, elem := range elements {
		if elem.Kind != KindRoom {
			continue
		}
		if id != "" {
			if elem.ID == id {
				return elem, true
			}
			continue
		}
		area := (elem.Bound.Right() - elem.Bound.Left()) * (elem.Bound.Top() - elem.Bound.Bottom())
		if area > bestArea {
			best, bestArea, found = elem, area, true
		}
	}
	return best, found
}

// nearestWall returns the wall closest to p, the offset along it from the
// room corner, and the distance from p to that wall.
func nearestWall(room models.RoomGeometry, p orb.Point) (models.Wall, float64, float64) {
	x := clamp(p.X(), 0, room.Width)
	y := clamp(p.Y(), 0, room.Length)

	candidates := []struct {
		wall   models.Wall
		dist   float64
		offset float64
	}{
		{models.WallNorth, math.Abs(room.Length - p.Y()), x},
		{models.WallSouth, math.Abs(p.Y()), x},
		{models.WallEast, math.Abs(room.Width - p.X()), y},
		{models.WallWest, math.Abs(p.X()), y},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.dist < best.dist {
			best = c
		}
	}
	return best.wall, best.offset, best.dist
}

func openingHeight(kind ElementKind, roomHeight float64) float64 {
	switch kind {
	case KindDoor:
		return math.Min(doorHeightCM, roomHeight)
	case KindWindow:
		return windowHeightCM
	}
	return roomHeight
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
