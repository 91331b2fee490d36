package civil

import "fmt"

// TimeRange is a half-open clock interval [Start, End).
type TimeRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// NewTimeRange builds the interval starting at start and lasting
// durationMinutes.
func NewTimeRange(start TimeOfDay, durationMinutes int) TimeRange {
	return TimeRange{Start: start, End: start.AddMinutes(durationMinutes)}
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Duration returns the interval length in minutes.
func (r TimeRange) Duration() int { return r.End.Minutes() - r.Start.Minutes() }

// Overlaps reports whether two half-open intervals intersect. Touching
// boundaries do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains reports whether other lies fully inside r.
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.Before(r.Start) && !r.End.Before(other.End)
}
