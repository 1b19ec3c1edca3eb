package get_defence_sessions

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions/models"
)

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

// FromServiceResponse конвертирует список сессий сервиса в HTTP response
func FromServiceResponse(sessions []*models.DefenceSessionResponse) []DefenceSessionResponse {
	result := make([]DefenceSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, DefenceSessionResponse{
			ID:             s.ID,
			Description:    s.Description,
			Date:           s.Date.Format(domain.DateFormat),
			StartTime:      s.StartTime.String(),
			EndTime:        s.EndTime.String(),
			TaskCategoryID: s.TaskCategoryID,
			CreatedAt:      s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
		})
	}
	return result
}
