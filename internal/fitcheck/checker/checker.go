package checker

import (
	"math"
	"strconv"

	"placement-service/internal/fitcheck/models"
	"placement-service/internal/fitcheck/rules"
)

// ============================================================
// Fit Checker
// ============================================================

// Checker evaluates furniture layouts against an immutable rule store.
// It holds no per-call state, so one Checker may serve concurrent callers.
type Checker struct {
	rules    *rules.Store
	walkways WalkwayAnalyzer
}

type Option func(*Checker)

// WithWalkwayAnalyzer replaces the placeholder walkway computation.
func WithWalkwayAnalyzer(a WalkwayAnalyzer) Option {
	return func(c *Checker) {
		if a != nil {
			c.walkways = a
		}
	}
}

func New(store *rules.Store, opts ...Option) *Checker {
	c := &Checker{
		rules:    store,
		walkways: PlaceholderWalkways{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rules returns the store the checker was built with.
func (c *Checker) Rules() *rules.Store {
	return c.rules
}

// CheckFit runs boundary, overlap, clearance, relationship, accessibility and
// safety passes in that order and aggregates their issues.
func (c *Checker) CheckFit(room models.RoomGeometry, furniture []models.FurnitureItem, opts models.FitCheckOptions) models.FitCheckResult {
	issues := []models.Issue{}

	issues = append(issues, checkBoundaries(room, furniture)...)
	issues = append(issues, checkOverlaps(furniture)...)
	issues = append(issues, c.checkClearances(room, furniture)...)
	issues = append(issues, c.checkRelationships(furniture, opts.RoomType)...)
	issues = append(issues, c.checkAccessibility(room, furniture, opts.Accessibility)...)
	issues = append(issues, c.checkSafety(furniture, opts)...)

	return Aggregate(issues)
}

// ValidatePlacement is the boundary-only check.
func (c *Checker) ValidatePlacement(room models.RoomGeometry, furniture []models.FurnitureItem) models.FitCheckResult {
	issues := []models.Issue{}
	issues = append(issues, checkBoundaries(room, furniture)...)
	return Aggregate(issues)
}

// ============================================================
// Helpers
// ============================================================

// formatCM renders a length rounded to 0.1 cm without trailing zeros.
func formatCM(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
