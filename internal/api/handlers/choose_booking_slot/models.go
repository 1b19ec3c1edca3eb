package choose_booking_slot

import (
	"time"

	chooseBookingSlot "github.com/m04kA/SMC-DefenceBookingService/internal/usecase/choose_booking_slot"
)

// BookingSlotResponse HTTP response model
type BookingSlotResponse struct {
	ID               int64  `json:"id"`
	DefenceSessionID int64  `json:"defenceSessionId"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	IsBooked         bool   `json:"isBooked"`
	UserID           int64  `json:"userId"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *chooseBookingSlot.Response) *BookingSlotResponse {
	return &BookingSlotResponse{
		ID:               resp.ID,
		DefenceSessionID: resp.DefenceSessionID,
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		IsBooked:         resp.IsBooked,
		UserID:           resp.UserID,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
