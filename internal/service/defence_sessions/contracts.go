package defence_sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
)

// DefenceSessionRepository интерфейс репозитория сессий защит
type DefenceSessionRepository interface {
	Create(ctx context.Context, session *domain.DefenceSession) (*domain.DefenceSession, error)
	GetByID(ctx context.Context, id int64) (*domain.DefenceSession, error)
	GetAll(ctx context.Context) ([]*domain.DefenceSession, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.DefenceSession, error)
	Update(ctx context.Context, session *domain.DefenceSession) (*domain.DefenceSession, error)
	Delete(ctx context.Context, id int64) error
}

// BookingSlotRepository интерфейс репозитория слотов
type BookingSlotRepository interface {
	GetByDefenceSessionID(ctx context.Context, defenceSessionID int64) ([]*domain.BookingSlot, error)
	DeleteByDefenceSessionID(ctx context.Context, defenceSessionID int64) (int64, error)
}

// TaskCategoryRepository интерфейс репозитория категорий задач
type TaskCategoryRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
