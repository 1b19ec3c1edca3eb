package get_booking_slots

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/service/booking_slots/models"
)

// BookingSlotResponse HTTP response model
type BookingSlotResponse struct {
	ID               int64  `json:"id"`
	DefenceSessionID int64  `json:"defenceSessionId"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	IsBooked         bool   `json:"isBooked"`
	UserID           *int64 `json:"userId"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// FromServiceResponse конвертирует слоты сервиса в HTTP response
func FromServiceResponse(slots []*models.BookingSlotResponse) []BookingSlotResponse {
	result := make([]BookingSlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, BookingSlotResponse{
			ID:               slot.ID,
			DefenceSessionID: slot.DefenceSessionID,
			StartTime:        slot.StartTime.String(),
			EndTime:          slot.EndTime.String(),
			IsBooked:         slot.IsBooked,
			UserID:           slot.UserID,
			CreatedAt:        slot.CreatedAt.Format(time.RFC3339),
			UpdatedAt:        slot.UpdatedAt.Format(time.RFC3339),
		})
	}
	return result
}
