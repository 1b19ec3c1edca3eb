package models

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

// DefenceSessionRequest данные для создания или обновления сессии защит
type DefenceSessionRequest struct {
	Description    string
	Date           time.Time
	StartTime      types.TimeOfDay
	EndTime        types.TimeOfDay
	TaskCategoryID int64
}

// ToDomain конвертирует запрос в доменную модель.
// Время обрезается до микросекунд, как его хранит колонка TIME.
func (r *DefenceSessionRequest) ToDomain(id int64) *domain.DefenceSession {
	y, m, d := r.Date.Date()
	return &domain.DefenceSession{
		ID:             id,
		Description:    r.Description,
		Date:           time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		StartTime:      r.StartTime.Truncate(domain.MinSlotResolution),
		EndTime:        r.EndTime.Truncate(domain.MinSlotResolution),
		TaskCategoryID: r.TaskCategoryID,
	}
}

// DefenceSessionResponse сессия защит
type DefenceSessionResponse struct {
	ID             int64
	Description    string
	Date           time.Time
	StartTime      types.TimeOfDay
	EndTime        types.TimeOfDay
	TaskCategoryID int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FromDomainDefenceSession конвертирует доменную модель в ответ сервиса
func FromDomainDefenceSession(session *domain.DefenceSession) *DefenceSessionResponse {
	return &DefenceSessionResponse{
		ID:             session.ID,
		Description:    session.Description,
		Date:           session.Date,
		StartTime:      session.StartTime,
		EndTime:        session.EndTime,
		TaskCategoryID: session.TaskCategoryID,
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}
}

// FromDomainDefenceSessions конвертирует список сессий
func FromDomainDefenceSessions(sessions []*domain.DefenceSession) []*DefenceSessionResponse {
	result := make([]*DefenceSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, FromDomainDefenceSession(session))
	}
	return result
}
