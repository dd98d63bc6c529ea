package domain

// Severity separates blocking findings from advisory ones
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category groups findings for display
type Category string

const (
	CategoryStartPoint Category = "startPoint"
	CategoryPoints     Category = "points"
	CategoryVehicles   Category = "vehicles"
	CategoryCapacity   Category = "capacity"
	CategoryOther      Category = "other"
)

// Categories lists categories in display order.
var Categories = []Category{
	CategoryStartPoint,
	CategoryPoints,
	CategoryVehicles,
	CategoryCapacity,
	CategoryOther,
}

// EntityKind names what an issue points at
type EntityKind string

const (
	EntityRequest    EntityKind = "request"
	EntityStartPoint EntityKind = "startPoint"
	EntityPoint      EntityKind = "point"
	EntityVehicle    EntityKind = "vehicle"
)

// EntityRef identifies the record an issue was raised for.
// Index is the position in the request (0-based), -1 when not applicable.
type EntityRef struct {
	Kind  EntityKind `json:"kind"`
	Index int        `json:"index"`
	ID    string     `json:"id,omitempty"`
}

// Issue - a single validation finding
type Issue struct {
	Severity Severity   `json:"severity"`
	Category Category   `json:"category"`
	Entity   *EntityRef `json:"entity,omitempty"`
	Message  string     `json:"message"`
}

// ValidationResult - outcome of one validation pass
type ValidationResult struct {
	IsValid       bool     `json:"isValid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	ErrorIssues   []Issue  `json:"-"`
	WarningIssues []Issue  `json:"-"`
}

// Issues returns errors followed by warnings.
func (r ValidationResult) Issues() []Issue {
	out := make([]Issue, 0, len(r.ErrorIssues)+len(r.WarningIssues))
	out = append(out, r.ErrorIssues...)
	return append(out, r.WarningIssues...)
}
