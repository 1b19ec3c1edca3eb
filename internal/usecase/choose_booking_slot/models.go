package choose_booking_slot

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

// Request модель запроса на выбор слота
type Request struct {
	UserID        int64 // ID пользователя, который занимает слот
	BookingSlotID int64 // ID слота
}

// Response занятый слот
type Response struct {
	ID               int64
	DefenceSessionID int64
	StartTime        types.TimeOfDay
	EndTime          types.TimeOfDay
	IsBooked         bool
	UserID           int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func fromDomain(slot *domain.BookingSlot) *Response {
	resp := &Response{
		ID:               slot.ID,
		DefenceSessionID: slot.DefenceSessionID,
		StartTime:        slot.StartTime,
		EndTime:          slot.EndTime,
		IsBooked:         slot.IsBooked,
		CreatedAt:        slot.CreatedAt,
		UpdatedAt:        slot.UpdatedAt,
	}
	if slot.UserID != nil {
		resp.UserID = *slot.UserID
	}
	return resp
}
