package choose_booking_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/booking_slot"
	userRepo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/user"
)

// UseCase use case для выбора слота студентом
type UseCase struct {
	userRepo  UserRepository
	slotRepo  BookingSlotRepository
	txManager TransactionManager
	publisher EventPublisher
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	slotRepo BookingSlotRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		slotRepo:  slotRepo,
		txManager: txManager,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute закрепляет слот за студентом.
// Слот блокируется на время транзакции, а запись условная (is_booked = false),
// поэтому из конкурентных запросов на один слот успешен ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChooseBookingSlot: user=%d, slot=%d", req.UserID, req.BookingSlotID)

	var result *domain.BookingSlot

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Пользователь
		user, err := uc.userRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("ChooseBookingSlot: user id=%d not found", req.UserID)
				return fmt.Errorf("%w: id=%d", ErrUserNotFound, req.UserID)
			}
			uc.logger.Error("ChooseBookingSlot: failed to get user id=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		// 2. Слот с блокировкой строки
		slot, err := uc.slotRepo.GetByID(txCtx, req.BookingSlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrBookingSlotNotFound) {
				uc.logger.Warn("ChooseBookingSlot: booking slot id=%d not found", req.BookingSlotID)
				return fmt.Errorf("%w: id=%d", ErrBookingSlotNotFound, req.BookingSlotID)
			}
			uc.logger.Error("ChooseBookingSlot: failed to get booking slot id=%d: %v", req.BookingSlotID, err)
			return fmt.Errorf("%w: failed to get booking slot: %v", ErrInternal, err)
		}

		// 3. Проверка роли и занятости
		if err := slot.AssignTo(user); err != nil {
			switch {
			case errors.Is(err, domain.ErrUserNotStudent):
				uc.logger.Warn("ChooseBookingSlot: user id=%d with role %s is not a student", user.ID, user.Role)
				uc.metrics.IncAllocationConflict(reasonNotStudent)
				return fmt.Errorf("%w: id=%d, role=%s", ErrUserNotStudent, user.ID, user.Role)
			case errors.Is(err, domain.ErrSlotAlreadyBooked):
				uc.logger.Warn("ChooseBookingSlot: booking slot id=%d is already booked", slot.ID)
				uc.metrics.IncAllocationConflict(reasonAlreadyBooked)
				return fmt.Errorf("%w: id=%d", ErrSlotAlreadyBooked, slot.ID)
			default:
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}

		// 4. Условная запись
		if err := uc.slotRepo.Assign(txCtx, slot); err != nil {
			if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) {
				uc.logger.Warn("ChooseBookingSlot: booking slot id=%d was taken concurrently", slot.ID)
				uc.metrics.IncAllocationConflict(reasonAlreadyBooked)
				return fmt.Errorf("%w: id=%d", ErrSlotAlreadyBooked, slot.ID)
			}
			uc.logger.Error("ChooseBookingSlot: failed to save booking slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to save booking slot: %v", ErrInternal, err)
		}

		result = slot
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ChooseBookingSlot: booking slot id=%d assigned to user id=%d", result.ID, req.UserID)

	uc.metrics.IncBookingSlotsChosen()
	if err := uc.publisher.PublishBookingSlotChosen(result); err != nil {
		uc.logger.Warn("ChooseBookingSlot: failed to publish event: %v", err)
	}

	return fromDomain(result), nil
}
