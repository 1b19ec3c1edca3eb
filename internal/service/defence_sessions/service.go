package defence_sessions

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/defence_session"
	"github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions/models"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/txmanager"
)

// Service сервис для работы с сессиями защит
type Service struct {
	sessionRepo  DefenceSessionRepository
	slotRepo     BookingSlotRepository
	categoryRepo TaskCategoryRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий защит
func NewService(
	sessionRepo DefenceSessionRepository,
	slotRepo BookingSlotRepository,
	categoryRepo TaskCategoryRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		slotRepo:     slotRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает сессию защит.
// Проверка пересечений и вставка выполняются в одной SERIALIZABLE транзакции.
func (s *Service) Create(ctx context.Context, req *models.DefenceSessionRequest) (*models.DefenceSessionResponse, error) {
	s.logger.Info("Create: date=%s, time=%s-%s, category=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.TaskCategoryID)

	candidate := req.ToDomain(0)
	if _, err := domain.NewTimeWindow(candidate.StartTime, candidate.EndTime); err != nil {
		s.logger.Warn("Create: invalid time range %s-%s", req.StartTime, req.EndTime)
		return nil, fmt.Errorf("%w: start=%s, end=%s", ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}
	if err := validateRequest(req); err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, err
	}

	var created *domain.DefenceSession
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Категория задач должна существовать
		if err := s.checkTaskCategory(txCtx, req.TaskCategoryID); err != nil {
			return err
		}

		// 2. Проверяем пересечения с сессиями той же даты
		if err := s.checkScheduleConflict(txCtx, candidate); err != nil {
			return err
		}

		// 3. Сохраняем
		session, err := s.sessionRepo.Create(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("%w: Create - failed to create defence session: %w", ErrInternal, err)
		}
		created = session
		return nil
	})

	if err != nil {
		return nil, s.mapTxError("Create", err)
	}

	s.logger.Info("Create: successfully created defence session id=%d", created.ID)
	return models.FromDomainDefenceSession(created), nil
}

// Update обновляет сессию защит.
// Сначала проверяется существование сессии, затем порядок времени.
func (s *Service) Update(ctx context.Context, id int64, req *models.DefenceSessionRequest) (*models.DefenceSessionResponse, error) {
	s.logger.Info("Update: id=%d, date=%s, time=%s-%s, category=%d",
		id, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.TaskCategoryID)

	var updated *domain.DefenceSession
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Сессия должна существовать, строка блокируется до конца транзакции
		current, err := s.sessionRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrDefenceSessionNotFound) {
				return fmt.Errorf("%w: id=%d", ErrDefenceSessionNotFound, id)
			}
			return fmt.Errorf("%w: Update - failed to get defence session: %w", ErrInternal, err)
		}

		// 2. Валидируем новые значения
		candidate := req.ToDomain(id)
		window, err := domain.NewTimeWindow(candidate.StartTime, candidate.EndTime)
		if err != nil {
			return fmt.Errorf("%w: start=%s, end=%s", ErrInvalidTimeRange, req.StartTime, req.EndTime)
		}
		if err := validateRequest(req); err != nil {
			return err
		}

		// 3. Категория задач должна существовать
		if err := s.checkTaskCategory(txCtx, req.TaskCategoryID); err != nil {
			return err
		}

		// 4. Проверяем пересечения, исключая саму сессию
		if err := s.checkScheduleConflict(txCtx, candidate); err != nil {
			return err
		}

		// 5. Уже сгенерированные слоты должны остаться внутри сессии
		if err := s.checkBookingSlotsFit(txCtx, current, candidate, window); err != nil {
			return err
		}

		// 6. Сохраняем
		session, err := s.sessionRepo.Update(txCtx, candidate)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrDefenceSessionNotFound) {
				return fmt.Errorf("%w: id=%d", ErrDefenceSessionNotFound, id)
			}
			return fmt.Errorf("%w: Update - failed to update defence session: %w", ErrInternal, err)
		}
		updated = session
		return nil
	})

	if err != nil {
		return nil, s.mapTxError("Update", err)
	}

	s.logger.Info("Update: successfully updated defence session id=%d", id)
	return models.FromDomainDefenceSession(updated), nil
}

// GetByID получает сессию защит по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.DefenceSessionResponse, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrDefenceSessionNotFound) {
			s.logger.Warn("GetByID: defence session id=%d not found", id)
			return nil, fmt.Errorf("%w: id=%d", ErrDefenceSessionNotFound, id)
		}
		s.logger.Error("GetByID: repository error for defence session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDefenceSession(session), nil
}

// GetAll возвращает все сессии защит по дате и времени начала
func (s *Service) GetAll(ctx context.Context) ([]*models.DefenceSessionResponse, error) {
	var sessions []*domain.DefenceSession
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		sessions, err = s.sessionRepo.GetAll(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d defence sessions", len(sessions))
	return models.FromDomainDefenceSessions(sessions), nil
}

// Delete удаляет сессию защит вместе с её слотами в одной транзакции
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: id=%d", id)

	var deletedSlots int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем сессию
		if _, err := s.sessionRepo.GetByID(txCtx, id); err != nil {
			if errors.Is(err, sessionRepo.ErrDefenceSessionNotFound) {
				return fmt.Errorf("%w: id=%d", ErrDefenceSessionNotFound, id)
			}
			return fmt.Errorf("%w: Delete - failed to get defence session: %w", ErrInternal, err)
		}

		// 2. Удаляем слоты
		n, err := s.slotRepo.DeleteByDefenceSessionID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Delete - failed to delete booking slots: %w", ErrInternal, err)
		}
		deletedSlots = n

		// 3. Удаляем сессию
		if err := s.sessionRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, sessionRepo.ErrDefenceSessionNotFound) {
				return fmt.Errorf("%w: id=%d", ErrDefenceSessionNotFound, id)
			}
			return fmt.Errorf("%w: Delete - failed to delete defence session: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrDefenceSessionNotFound) {
			s.logger.Warn("Delete: defence session id=%d not found", id)
			return err
		}
		s.logger.Error("Delete: failed to delete defence session id=%d: %v", id, err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: Delete - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted defence session id=%d with %d booking slots", id, deletedSlots)
	return nil
}

func (s *Service) checkTaskCategory(ctx context.Context, id int64) error {
	exists, err := s.categoryRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: failed to check task category: %w", ErrInternal, err)
	}
	if !exists {
		return fmt.Errorf("%w: id=%d", ErrTaskCategoryNotFound, id)
	}
	return nil
}

func (s *Service) checkBookingSlotsFit(
	ctx context.Context,
	current, candidate *domain.DefenceSession,
	window domain.TimeWindow,
) error {
	if candidate.SameDate(current) && window.Contains(current.Window()) {
		return nil
	}

	slots, err := s.slotRepo.GetByDefenceSessionID(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to get booking slots: %w", ErrInternal, err)
	}
	if len(slots) == 0 {
		return nil
	}
	if !candidate.SameDate(current) {
		return fmt.Errorf("%w: id=%d has %d slots, date change is not allowed",
			ErrBookingSlotsOutsideSession, current.ID, len(slots))
	}
	for _, slot := range slots {
		if !window.Contains(slot.Window()) {
			return fmt.Errorf("%w: slot id=%d (%s-%s) is outside %s-%s",
				ErrBookingSlotsOutsideSession, slot.ID, slot.StartTime, slot.EndTime, window.Start, window.End)
		}
	}
	return nil
}

func (s *Service) checkScheduleConflict(ctx context.Context, candidate *domain.DefenceSession) error {
	sameDate, err := s.sessionRepo.GetByDate(ctx, candidate.Date)
	if err != nil {
		return fmt.Errorf("%w: failed to get defence sessions by date: %w", ErrInternal, err)
	}

	if conflict := domain.FindScheduleConflict(candidate, sameDate); conflict != nil {
		return fmt.Errorf("%w: overlaps session id=%d (%s-%s)",
			ErrScheduleConflict, conflict.ID, conflict.StartTime, conflict.EndTime)
	}
	return nil
}

// mapTxError логирует ошибку транзакции и приводит её к ошибкам сервиса.
// Конкурентная вставка пересекающейся сессии обнаруживается как serialization failure.
func (s *Service) mapTxError(op string, err error) error {
	switch {
	case errors.Is(err, txmanager.ErrSerializationFailure):
		s.logger.Warn("%s: concurrent schedule change: %v", op, err)
		return fmt.Errorf("%w: concurrent update", ErrScheduleConflict)
	case errors.Is(err, ErrDefenceSessionNotFound),
		errors.Is(err, ErrTaskCategoryNotFound),
		errors.Is(err, ErrInvalidTimeRange),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrScheduleConflict),
		errors.Is(err, ErrBookingSlotsOutsideSession):
		s.logger.Warn("%s: %v", op, err)
		return err
	case errors.Is(err, ErrInternal):
		s.logger.Error("%s: %v", op, err)
		return err
	default:
		s.logger.Error("%s: transaction error: %v", op, err)
		return fmt.Errorf("%w: %s - transaction error: %v", ErrInternal, op, err)
	}
}

func validateRequest(req *models.DefenceSessionRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.TaskCategoryID <= 0 {
		return fmt.Errorf("%w: taskCategoryId must be positive", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}
