package domain

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

// BookingSlot a sub-interval of a defence session that one student can hold
type BookingSlot struct {
	ID               int64
	DefenceSessionID int64
	StartTime        types.TimeOfDay
	EndTime          types.TimeOfDay
	IsBooked         bool
	UserID           *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the slot's time window
func (s *BookingSlot) Window() TimeWindow {
	return TimeWindow{Start: s.StartTime, End: s.EndTime}
}

// IsFree returns true if nobody holds the slot
func (s *BookingSlot) IsFree() bool {
	return !s.IsBooked
}

// AssignTo gives the slot to the user.
// Role is checked before the booked flag; on error the slot is left untouched.
func (s *BookingSlot) AssignTo(user *User) error {
	if !user.IsStudent() {
		return ErrUserNotStudent
	}
	if !s.IsFree() {
		return ErrSlotAlreadyBooked
	}

	userID := user.ID
	s.UserID = &userID
	s.IsBooked = true
	return nil
}
