package domain

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

// DefenceSession a teacher's time window on a given date during which students defend coursework
type DefenceSession struct {
	ID             int64
	Description    string
	Date           time.Time // calendar date, time part is ignored
	StartTime      types.TimeOfDay
	EndTime        types.TimeOfDay
	TaskCategoryID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the session's time window
func (s *DefenceSession) Window() TimeWindow {
	return TimeWindow{Start: s.StartTime, End: s.EndTime}
}

// SameDate returns true if both sessions are on the same calendar date
func (s *DefenceSession) SameDate(other *DefenceSession) bool {
	return SameDate(s.Date, other.Date)
}

// SameDate compares calendar dates ignoring time and location
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
