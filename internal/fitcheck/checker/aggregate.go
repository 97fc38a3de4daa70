package checker

import (
	"fmt"

	"placement-service/internal/fitcheck/models"
)

// ============================================================
// Aggregator
// ============================================================

const (
	errorPenalty   = 20
	warningPenalty = 10
)

// Aggregate turns a list of issues into the final verdict.
func Aggregate(issues []models.Issue) models.FitCheckResult {
	if issues == nil {
		issues = []models.Issue{}
	}
	errors, _ := countSeverities(issues)

	return models.FitCheckResult{
		Passed:      errors == 0,
		Issues:      issues,
		Score:       Score(issues),
		Suggestions: Suggestions(issues),
	}
}

// Score starts at 100, takes 20 per error and 10 per warning, clamped to [0,100].
func Score(issues []models.Issue) int {
	errors, warnings := countSeverities(issues)
	score := 100 - errors*errorPenalty - warnings*warningPenalty
	return min(max(score, 0), 100)
}

func Suggestions(issues []models.Issue) []string {
	suggestions := []string{}
	errors, warnings := countSeverities(issues)

	if errors > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Fix %d critical issue(s) before proceeding", errors))
	}
	if warnings > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Consider addressing %d layout optimization(s)", warnings))
	}

	if hasType(issues, models.IssueOverlap) {
		suggestions = append(suggestions, "Move overlapping furniture to create proper separation")
	}
	if hasType(issues, models.IssueClearance) {
		suggestions = append(suggestions, "Increase spacing between furniture for better circulation")
	}
	if hasType(issues, models.IssueRelationship) {
		suggestions = append(suggestions, "Adjust distances between related furniture pieces")
	}
	if hasType(issues, models.IssueAccessibility) {
		suggestions = append(suggestions, "Widen walkways to meet accessibility requirements")
	}
	if hasType(issues, models.IssueSafety) {
		suggestions = append(suggestions, "Anchor tall furniture to the wall")
	}
	return suggestions
}

func countSeverities(issues []models.Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case models.SeverityError:
			errors++
		case models.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

func hasType(issues []models.Issue, t models.IssueType) bool {
	for _, issue := range issues {
		if issue.Type == t {
			return true
		}
	}
	return false
}
