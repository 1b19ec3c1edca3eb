package choose_booking_slot

import (
	"context"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// BookingSlotRepository интерфейс репозитория слотов
type BookingSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingSlot, error)
	Assign(ctx context.Context, slot *domain.BookingSlot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий после фиксации транзакции
type EventPublisher interface {
	PublishBookingSlotChosen(slot *domain.BookingSlot) error
}

// Metrics счетчики выбора слотов
type Metrics interface {
	IncBookingSlotsChosen()
	IncAllocationConflict(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
