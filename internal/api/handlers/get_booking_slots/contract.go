package get_booking_slots

import (
	"context"

	"github.com/m04kA/SMC-DefenceBookingService/internal/service/booking_slots/models"
)

type BookingSlotService interface {
	GetByDefenceSessionID(ctx context.Context, defenceSessionID int64) ([]*models.BookingSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
