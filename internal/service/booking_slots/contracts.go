package booking_slots

import (
	"context"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
)

// BookingSlotRepository интерфейс репозитория слотов
type BookingSlotRepository interface {
	GetByDefenceSessionID(ctx context.Context, defenceSessionID int64) ([]*domain.BookingSlot, error)
	DeleteByDefenceSessionID(ctx context.Context, defenceSessionID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
