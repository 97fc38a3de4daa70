package geometry

import (
	"placement-service/internal/fitcheck/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ============================================================
// Bounding boxes
// ============================================================

// Bounds returns the item's axis-aligned footprint: centre ± half width/length.
// Rotation is ignored and height never contributes.
func Bounds(item models.FurnitureItem) orb.Bound {
	halfWidth := item.Dimensions.Width / 2
	halfLength := item.Dimensions.Length / 2

	return orb.Bound{
		Min: orb.Point{item.Position.X - halfWidth, item.Position.Y - halfLength},
		Max: orb.Point{item.Position.X + halfWidth, item.Position.Y + halfLength},
	}
}

// RoomBounds is the room footprint [0,width] × [0,length].
func RoomBounds(room models.RoomGeometry) orb.Bound {
	return orb.Bound{
		Min: orb.Point{0, 0},
		Max: orb.Point{room.Width, room.Length},
	}
}

// Inside reports whether b lies within outer; shared edges count as inside.
func Inside(b, outer orb.Bound) bool {
	return b.Min.X() >= outer.Min.X() && b.Max.X() <= outer.Max.X() &&
		b.Min.Y() >= outer.Min.Y() && b.Max.Y() <= outer.Max.Y()
}

// Overlaps reports whether two items intersect with positive area.
// Touching edges do not overlap, unlike orb.Bound.Intersects.
func Overlaps(a, b models.FurnitureItem) bool {
	ba, bb := Bounds(a), Bounds(b)

	return !(ba.Max.X() <= bb.Min.X() || bb.Max.X() <= ba.Min.X() ||
		ba.Max.Y() <= bb.Min.Y() || bb.Max.Y() <= ba.Min.Y())
}

// ============================================================
// Distances
// ============================================================

func Center(item models.FurnitureItem) orb.Point {
	return orb.Point{item.Position.X, item.Position.Y}
}

// Distance is the Euclidean distance between item centres.
func Distance(a, b models.FurnitureItem) float64 {
	return planar.Distance(Center(a), Center(b))
}

// DistanceToPoint is the Euclidean distance from an item's centre to p.
func DistanceToPoint(item models.FurnitureItem, p orb.Point) float64 {
	return planar.Distance(Center(item), p)
}

// OpeningPosition resolves a wall-relative opening offset into room coordinates.
// North is the wall at y = length, east the wall at x = width.
func OpeningPosition(room models.RoomGeometry, opening models.Opening) orb.Point {
	d := opening.Position.DistanceFromCorner

	switch opening.Position.Wall {
	case models.WallNorth:
		return orb.Point{d, room.Length}
	case models.WallSouth:
		return orb.Point{d, 0}
	case models.WallEast:
		return orb.Point{room.Width, d}
	case models.WallWest:
		return orb.Point{0, d}
	}
	return orb.Point{0, 0}
}
