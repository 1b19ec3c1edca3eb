package booking_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DefenceBookingService/internal/service/booking_slots/models"
)

// Service сервис чтения и удаления слотов сессии
type Service struct {
	slotRepo BookingSlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo BookingSlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// GetByDefenceSessionID возвращает слоты сессии в порядке времени начала.
// Пустой результат считается ошибкой ErrBookingSlotsNotFound.
func (s *Service) GetByDefenceSessionID(ctx context.Context, defenceSessionID int64) ([]*models.BookingSlotResponse, error) {
	slots, err := s.slotRepo.GetByDefenceSessionID(ctx, defenceSessionID)
	if err != nil {
		s.logger.Error("GetByDefenceSessionID: failed to get slots for defence session id=%d: %v", defenceSessionID, err)
		return nil, fmt.Errorf("%w: GetByDefenceSessionID - repository error: %v", ErrInternal, err)
	}

	if len(slots) == 0 {
		s.logger.Warn("GetByDefenceSessionID: no slots for defence session id=%d", defenceSessionID)
		return nil, fmt.Errorf("%w: defenceSessionID=%d", ErrBookingSlotsNotFound, defenceSessionID)
	}

	return models.FromDomainBookingSlots(slots), nil
}

// RemoveByDefenceSessionID удаляет все слоты сессии одним запросом
func (s *Service) RemoveByDefenceSessionID(ctx context.Context, defenceSessionID int64) error {
	s.logger.Info("RemoveByDefenceSessionID: defenceSession=%d", defenceSessionID)

	deleted, err := s.slotRepo.DeleteByDefenceSessionID(ctx, defenceSessionID)
	if err != nil {
		s.logger.Error("RemoveByDefenceSessionID: failed to delete slots for defence session id=%d: %v", defenceSessionID, err)
		return fmt.Errorf("%w: RemoveByDefenceSessionID - repository error: %v", ErrInternal, err)
	}

	if deleted == 0 {
		s.logger.Warn("RemoveByDefenceSessionID: no slots for defence session id=%d", defenceSessionID)
		return fmt.Errorf("%w: defenceSessionID=%d", ErrBookingSlotsNotFound, defenceSessionID)
	}

	s.logger.Info("RemoveByDefenceSessionID: deleted %d slots for defence session id=%d", deleted, defenceSessionID)
	return nil
}
