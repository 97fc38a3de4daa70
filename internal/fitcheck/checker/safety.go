package checker

import (
	"fmt"

	"placement-service/internal/fitcheck/models"
)

// ============================================================
// Safety pass
// ============================================================

// checkSafety flags tall, narrow items as tip-over risks when child_safe is set.
// pet_friendly enables the pass but carries no checks of its own yet.
func (c *Checker) checkSafety(furniture []models.FurnitureItem, opts models.FitCheckOptions) []models.Issue {
	if !opts.ChildSafe && !opts.PetFriendly {
		return nil
	}

	var issues []models.Issue
	if opts.ChildSafe {
		limits := c.rules.ChildSafe()
		for _, item := range furniture {
			height := item.Dimensions.Height
			if height <= limits.TipOverHeightCM || item.Dimensions.Width/height >= limits.TipOverMinRatio {
				continue
			}
			issues = append(issues, models.Issue{
				Type:         models.IssueSafety,
				Severity:     models.SeverityWarning,
				Message:      fmt.Sprintf("%s may have tip-over risk - consider securing to wall", item.Category),
				FurnitureIDs: []string{item.ID},
			})
		}
	}
	return issues
}
