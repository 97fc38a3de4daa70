package checker

import (
	"fmt"

	"placement-service/internal/fitcheck/geometry"
	"placement-service/internal/fitcheck/models"
)

// ============================================================
// Boundary & Overlap passes
// ============================================================

func checkBoundaries(room models.RoomGeometry, furniture []models.FurnitureItem) []models.Issue {
	var issues []models.Issue
	roomBounds := geometry.RoomBounds(room)

	for _, item := range furniture {
		if geometry.Inside(geometry.Bounds(item), roomBounds) {
			continue
		}
		issues = append(issues, models.Issue{
			Type:         models.IssueClearance,
			Severity:     models.SeverityError,
			Message:      fmt.Sprintf("%s extends beyond room boundaries", item.Category),
			FurnitureIDs: []string{item.ID},
		})
	}
	return issues
}

// checkOverlaps compares every unordered pair; rooms hold tens of items.
func checkOverlaps(furniture []models.FurnitureItem) []models.Issue {
	var issues []models.Issue

	for i := 0; i < len(furniture); i++ {
		for j := i + 1; j < len(furniture); j++ {
			a, b := furniture[i], furniture[j]
			if !geometry.Overlaps(a, b) {
				continue
			}
			issues = append(issues, models.Issue{
				Type:         models.IssueOverlap,
				Severity:     models.SeverityError,
				Message:      fmt.Sprintf("%s overlaps with %s", a.Category, b.Category),
				FurnitureIDs: []string{a.ID, b.ID},
			})
		}
	}
	return issues
}
