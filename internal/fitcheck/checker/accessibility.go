package checker

import (
	"fmt"

	"placement-service/internal/fitcheck/models"
)

// ============================================================
// Walkways
// ============================================================

// Walkway is a circulation path through the room and the items narrowing it.
type Walkway struct {
	WidthCM           float64
	BlockingFurniture []string
}

// WalkwayAnalyzer computes the walkways of a layout. A pathfinding
// implementation can be plugged in with WithWalkwayAnalyzer.
type WalkwayAnalyzer interface {
	Walkways(room models.RoomGeometry, furniture []models.FurnitureItem) []Walkway
}

// WalkwayFunc adapts a function to WalkwayAnalyzer.
type WalkwayFunc func(room models.RoomGeometry, furniture []models.FurnitureItem) []Walkway

func (f WalkwayFunc) Walkways(room models.RoomGeometry, furniture []models.FurnitureItem) []Walkway {
	return f(room, furniture)
}

const placeholderWalkwayCM = 120.0

// PlaceholderWalkways reports a single fixed-width walkway with no blockers.
type PlaceholderWalkways struct{}

func (PlaceholderWalkways) Walkways(models.RoomGeometry, []models.FurnitureItem) []Walkway {
	return []Walkway{{WidthCM: placeholderWalkwayCM, BlockingFurniture: []string{}}}
}

// ============================================================
// Accessibility pass
// ============================================================

// checkAccessibility runs only for a level known to the rule store.
func (c *Checker) checkAccessibility(room models.RoomGeometry, furniture []models.FurnitureItem, level string) []models.Issue {
	if level == "" {
		return nil
	}
	rule, ok := c.rules.Accessibility(level)
	if !ok {
		return nil
	}

	var issues []models.Issue
	for _, walkway := range c.walkways.Walkways(room, furniture) {
		if walkway.WidthCM >= rule.MinWalkwayCM {
			continue
		}
		ids := append([]string{}, walkway.BlockingFurniture...)
		issues = append(issues, models.Issue{
			Type:     models.IssueAccessibility,
			Severity: models.SeverityError,
			Message: fmt.Sprintf("Walkway too narrow for accessibility (%scm < %scm)",
				formatCM(walkway.WidthCM), formatCM(rule.MinWalkwayCM)),
			FurnitureIDs: ids,
		})
	}
	return issues
}
