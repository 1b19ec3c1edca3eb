package domain

import "errors"

var (
	// ErrInvalidSlotsCount slot count must be in [1, MaxBookingSlotsCount]
	ErrInvalidSlotsCount = errors.New("domain: booking slots count is out of range")

	// ErrSlotTooShort window too short to be split into the requested number of slots
	ErrSlotTooShort = errors.New("domain: booking slot duration is too short")

	// ErrInvalidTimeRange start time must be strictly before end time
	ErrInvalidTimeRange = errors.New("domain: start time must be before end time")

	// ErrUserNotStudent only students may hold booking slots
	ErrUserNotStudent = errors.New("domain: user is not a student")

	// ErrSlotAlreadyBooked slot already held by someone
	ErrSlotAlreadyBooked = errors.New("domain: booking slot is already booked")
)
