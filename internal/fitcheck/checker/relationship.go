package checker

import (
	"fmt"
	"strings"

	"placement-service/internal/fitcheck/geometry"
	"placement-service/internal/fitcheck/models"
)

// ============================================================
// Relationship pass
// ============================================================

// checkRelationships measures one representative pair per rule: the first
// item of each category. Further items of the same category are not measured.
func (c *Checker) checkRelationships(furniture []models.FurnitureItem, roomType string) []models.Issue {
	if roomType == "" {
		return nil
	}

	var issues []models.Issue
	for _, rel := range c.rules.Relationships(roomType) {
		a, okA := firstOfCategory(furniture, rel.CategoryA)
		b, okB := firstOfCategory(furniture, rel.CategoryB)
		if !okA || !okB || a.ID == b.ID {
			continue
		}

		distance := geometry.Distance(a, b)
		ids := []string{a.ID, b.ID}

		if rel.MinDistanceCM != nil && distance < *rel.MinDistanceCM {
			issues = append(issues, models.Issue{
				Type:     models.IssueRelationship,
				Severity: models.SeverityWarning,
				Message: fmt.Sprintf("%s too close to %s (%scm < %scm minimum)",
					rel.CategoryA, rel.CategoryB, formatCM(distance), formatCM(*rel.MinDistanceCM)),
				FurnitureIDs: ids,
			})
		}
		if rel.MaxDistanceCM != nil && distance > *rel.MaxDistanceCM {
			issues = append(issues, models.Issue{
				Type:     models.IssueRelationship,
				Severity: models.SeverityWarning,
				Message: fmt.Sprintf("%s too far from %s (%scm > %scm maximum)",
					rel.CategoryA, rel.CategoryB, formatCM(distance), formatCM(*rel.MaxDistanceCM)),
				FurnitureIDs: ids,
			})
		}
	}
	return issues
}

func firstOfCategory(furniture []models.FurnitureItem, category string) (models.FurnitureItem, bool) {
	for _, item := range furniture {
		if strings.EqualFold(item.Category, category) {
			return item, true
		}
	}
	return models.FurnitureItem{}, false
}
