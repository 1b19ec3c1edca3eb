package generate_booking_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/defence_session"
)

// UseCase use case для генерации слотов сессии защиты
type UseCase struct {
	sessionRepo DefenceSessionRepository
	slotRepo    BookingSlotRepository
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     Metrics
	resolution  time.Duration
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// resolution шаг, до которого округляется вниз длительность слота; меньше микросекунды не бывает.
func NewUseCase(
	sessionRepo DefenceSessionRepository,
	slotRepo BookingSlotRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	resolution time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		resolution:  resolution,
		logger:      logger,
	}
}

// Execute разбивает окно сессии на равные слоты и сохраняет их.
// Сессия блокируется на время транзакции, поэтому параллельные вызовы по одной сессии
// выполняются последовательно и второй получает ErrBookingSlotsAlreadyExist.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateBookingSlots: defenceSession=%d, count=%d", req.DefenceSessionID, req.BookingSlotsCount)

	// 1. Валидация до любых обращений к БД
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateBookingSlots: validation failed: %v", err)
		return nil, err
	}

	var created []*domain.BookingSlot

	// 2. Проверка, разбиение и вставка в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем сессию с блокировкой строки
		session, err := uc.sessionRepo.GetByID(txCtx, req.DefenceSessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrDefenceSessionNotFound) {
				uc.logger.Warn("GenerateBookingSlots: defence session id=%d not found", req.DefenceSessionID)
				return fmt.Errorf("%w: id=%d", ErrDefenceSessionNotFound, req.DefenceSessionID)
			}
			uc.logger.Error("GenerateBookingSlots: failed to get defence session id=%d: %v", req.DefenceSessionID, err)
			return fmt.Errorf("%w: failed to get defence session: %v", ErrInternal, err)
		}

		// 2.2. Слоты генерируются только один раз
		exists, err := uc.slotRepo.ExistsByDefenceSessionID(txCtx, session.ID)
		if err != nil {
			uc.logger.Error("GenerateBookingSlots: failed to check existing slots: %v", err)
			return fmt.Errorf("%w: failed to check existing slots: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("GenerateBookingSlots: slots for defence session id=%d already exist", session.ID)
			return fmt.Errorf("%w: defenceSessionID=%d", ErrBookingSlotsAlreadyExist, session.ID)
		}

		// 2.3. Разбиваем окно сессии
		windows, err := domain.PartitionWindow(session.Window(), req.BookingSlotsCount, uc.resolution)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSlotTooShort):
				uc.logger.Warn("GenerateBookingSlots: %v", err)
				return fmt.Errorf("%w: window=%s-%s, count=%d",
					ErrSlotTooShort, session.StartTime, session.EndTime, req.BookingSlotsCount)
			case errors.Is(err, domain.ErrInvalidSlotsCount):
				return fmt.Errorf("%w: %v", ErrInvalidSlotsCount, err)
			default:
				uc.logger.Error("GenerateBookingSlots: failed to partition defence session id=%d: %v", session.ID, err)
				return fmt.Errorf("%w: failed to partition window: %v", ErrInternal, err)
			}
		}

		slots := make([]*domain.BookingSlot, 0, len(windows))
		for _, w := range windows {
			slots = append(slots, &domain.BookingSlot{
				DefenceSessionID: session.ID,
				StartTime:        w.Start,
				EndTime:          w.End,
				IsBooked:         false,
				UserID:           nil,
			})
		}

		// 2.4. Сохраняем все слоты одним запросом
		created, err = uc.slotRepo.CreateBatch(txCtx, slots)
		if err != nil {
			uc.logger.Error("GenerateBookingSlots: failed to save slots: %v", err)
			return fmt.Errorf("%w: failed to save slots: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("GenerateBookingSlots: created %d slots for defence session id=%d", len(created), req.DefenceSessionID)

	// 3. После фиксации: метрики и событие. Ошибка публикации не отменяет результат.
	uc.metrics.AddBookingSlotsGenerated(len(created))
	if err := uc.publisher.PublishBookingSlotsGenerated(req.DefenceSessionID, created); err != nil {
		uc.logger.Warn("GenerateBookingSlots: failed to publish event: %v", err)
	}

	return fromDomain(req.DefenceSessionID, created), nil
}
