package create_defence_session

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions/models"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateDefenceSessionRequest HTTP request model
type CreateDefenceSessionRequest struct {
	Description    string `json:"description" validate:"max=1000"`
	Date           string `json:"date" validate:"required"`      // "2025-06-10"
	StartTime      string `json:"startTime" validate:"required"` // "10:00"
	EndTime        string `json:"endTime" validate:"required"`   // "12:00"
	TaskCategoryID int64  `json:"taskCategoryId" validate:"required,gt=0"`
}

// DefenceSessionResponse HTTP response model
type DefenceSessionResponse struct {
	ID             int64  `json:"id"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	TaskCategoryID int64  `json:"taskCategoryId"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDefenceSessionRequest) ToServiceRequest() (*models.DefenceSessionRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", errInvalidTime, err)
	}

	endTime, err := types.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", errInvalidTime, err)
	}

	return &models.DefenceSessionRequest{
		Description:    r.Description,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		TaskCategoryID: r.TaskCategoryID,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DefenceSessionResponse) *DefenceSessionResponse {
	return &DefenceSessionResponse{
		ID:             resp.ID,
		Description:    resp.Description,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		TaskCategoryID: resp.TaskCategoryID,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
