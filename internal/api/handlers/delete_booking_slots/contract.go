package delete_booking_slots

import "context"

type BookingSlotService interface {
	RemoveByDefenceSessionID(ctx context.Context, defenceSessionID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
