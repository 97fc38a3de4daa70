package checker

import (
	"fmt"

	"placement-service/internal/fitcheck/geometry"
	"placement-service/internal/fitcheck/models"
)

// ============================================================
// Clearance pass
// ============================================================

const neighborRadiusCM = 200.0

// checkClearances only inspects items whose category has an entry in the
// furniture rules, and measures every pair against between_furniture_cm.
// A pair where both items have rules is reported once, from the earlier item.
func (c *Checker) checkClearances(room models.RoomGeometry, furniture []models.FurnitureItem) []models.Issue {
	var issues []models.Issue
	index := geometry.NewIndex(furniture)
	required := c.rules.Clearance().BetweenFurnitureCM

	for i, item := range furniture {
		if _, ok := c.rules.FurnitureRule(item.Category); !ok {
			continue
		}

		for _, j := range index.Within(i, neighborRadiusCM) {
			other := furniture[j]
			if _, ok := c.rules.FurnitureRule(other.Category); ok && j < i {
				continue
			}

			distance := geometry.Distance(item, other)
			if distance >= required {
				continue
			}
			issues = append(issues, models.Issue{
				Type:     models.IssueClearance,
				Severity: models.SeverityWarning,
				Message: fmt.Sprintf("Insufficient clearance between %s and %s (%scm < %scm)",
					item.Category, other.Category, formatCM(distance), formatCM(required)),
				FurnitureIDs: []string{item.ID, other.ID},
			})
		}

		issues = append(issues, c.checkOpeningClearances(room, item)...)
	}
	return issues
}

func (c *Checker) checkOpeningClearances(room models.RoomGeometry, item models.FurnitureItem) []models.Issue {
	var issues []models.Issue
	clearance := c.rules.Clearance()

	for _, opening := range room.Openings {
		required := clearance.WindowClearanceCM
		if opening.Type == models.OpeningDoor {
			required = clearance.DoorClearanceCM
		}

		distance := geometry.DistanceToPoint(item, geometry.OpeningPosition(room, opening))
		if distance >= required {
			continue
		}
		issues = append(issues, models.Issue{
			Type:     models.IssueClearance,
			Severity: models.SeverityWarning,
			Message: fmt.Sprintf("%s too close to %s (%scm < %scm)",
				item.Category, opening.Type, formatCM(distance), formatCM(required)),
			FurnitureIDs: []string{item.ID},
		})
	}
	return issues
}
