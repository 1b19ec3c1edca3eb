package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04:05"   // HH:MM:SS
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxDescriptionLength = 1000

	// MaxBookingSlotsCount keeps a single multi-row INSERT under the 65535 bind parameter limit
	MaxBookingSlotsCount = 10000
)

// MinSlotResolution precision of the PostgreSQL TIME type.
// Slot boundaries finer than this would not survive a round trip through the database.
const MinSlotResolution = time.Microsecond
