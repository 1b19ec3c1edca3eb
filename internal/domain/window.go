package domain

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

// TimeWindow half-open interval [Start, End) within a single day
type TimeWindow struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// NewTimeWindow builds a window and checks Start < End
func NewTimeWindow(start, end types.TimeOfDay) (TimeWindow, error) {
	w := TimeWindow{Start: start, End: end}
	if !w.IsValid() {
		return TimeWindow{}, ErrInvalidTimeRange
	}
	return w, nil
}

// IsValid returns true if Start is strictly before End
func (w TimeWindow) IsValid() bool {
	return w.Start.Before(w.End)
}

// Duration returns End - Start
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps returns true if two half-open windows share any instant.
// Touching windows (one ends exactly when the other starts) do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

// Contains returns true if other lies entirely within w
func (w TimeWindow) Contains(other TimeWindow) bool {
	return !other.Start.Before(w.Start) && !other.End.After(w.End)
}
