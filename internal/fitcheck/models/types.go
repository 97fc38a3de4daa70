package models

// ============================================================
// Furniture
// ============================================================

// Dimensions are physical sizes in centimetres.
type Dimensions struct {
	Width  float64 `json:"width_cm"`
	Length float64 `json:"length_cm"`
	Height float64 `json:"height_cm"`
}

// Position is the centre of an item in room coordinates.
// Rotation is carried through but not applied to bounding boxes.
type Position struct {
	X        float64 `json:"x_cm"`
	Y        float64 `json:"y_cm"`
	Rotation float64 `json:"rotation_degrees"`
}

type FurnitureItem struct {
	ID         string     `json:"product_id"`
	Category   string     `json:"category"`
	Dimensions Dimensions `json:"dimensions"`
	Position   Position   `json:"position"`
}

// ============================================================
// Room
// ============================================================

type Wall string

const (
	WallNorth Wall = "north"
	WallSouth Wall = "south"
	WallEast  Wall = "east"
	WallWest  Wall = "west"
)

type OpeningType string

const (
	OpeningDoor    OpeningType = "door"
	OpeningWindow  OpeningType = "window"
	OpeningArchway OpeningType = "archway"
)

type OpeningPosition struct {
	Wall               Wall    `json:"wall"`
	DistanceFromCorner float64 `json:"distance_from_corner_cm"`
}

type OpeningDimensions struct {
	Width  float64 `json:"width_cm"`
	Height float64 `json:"height_cm"`
}

type Opening struct {
	Type       OpeningType       `json:"type"`
	Position   OpeningPosition   `json:"position"`
	Dimensions OpeningDimensions `json:"dimensions"`
}

// RoomGeometry has its origin at the south-west corner and extends to (Width, Length).
type RoomGeometry struct {
	Width    float64   `json:"width_cm"`
	Length   float64   `json:"length_cm"`
	Height   float64   `json:"height_cm"`
	Openings []Opening `json:"openings,omitempty"`
}

// ============================================================
// Options
// ============================================================

type FitCheckOptions struct {
	Accessibility string `json:"accessibility,omitempty"`
	ChildSafe     bool   `json:"child_safe,omitempty"`
	PetFriendly   bool   `json:"pet_friendly,omitempty"`
	RoomType      string `json:"room_type,omitempty"`
}

// ============================================================
// Result
// ============================================================

type IssueType string

const (
	IssueClearance     IssueType = "clearance"
	IssueOverlap       IssueType = "overlap"
	IssueRelationship  IssueType = "relationship"
	IssueAccessibility IssueType = "accessibility"
	IssueSafety        IssueType = "safety"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Issue struct {
	Type         IssueType `json:"type"`
	Severity     Severity  `json:"severity"`
	Message      string    `json:"message"`
	FurnitureIDs []string  `json:"furniture_ids"`
}

type FitCheckResult struct {
	Passed      bool     `json:"passed"`
	Issues      []Issue  `json:"issues"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}
