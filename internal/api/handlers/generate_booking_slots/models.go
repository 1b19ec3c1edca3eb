package generate_booking_slots

import (
	"time"

	generateBookingSlots "github.com/m04kA/SMC-DefenceBookingService/internal/usecase/generate_booking_slots"
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateBookingSlots.Response) []BookingSlotResponse {
	result := make([]BookingSlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
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
