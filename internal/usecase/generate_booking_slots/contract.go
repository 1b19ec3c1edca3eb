package generate_booking_slots

import (
	"context"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
)

// DefenceSessionRepository интерфейс репозитория сессий защиты
type DefenceSessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.DefenceSession, error)
}

// BookingSlotRepository интерфейс репозитория слотов
type BookingSlotRepository interface {
	ExistsByDefenceSessionID(ctx context.Context, defenceSessionID int64) (bool, error)
	CreateBatch(ctx context.Context, slots []*domain.BookingSlot) ([]*domain.BookingSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий после фиксации транзакции
type EventPublisher interface {
	PublishBookingSlotsGenerated(defenceSessionID int64, slots []*domain.BookingSlot) error
}

// Metrics счетчики генерации
type Metrics interface {
	AddBookingSlotsGenerated(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
