package get_defence_session

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
