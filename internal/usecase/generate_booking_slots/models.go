package generate_booking_slots

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

// Request модель запроса на генерацию слотов
type Request struct {
	DefenceSessionID  int64 // ID сессии защиты
	BookingSlotsCount int   // На сколько слотов разбить окно сессии
}

// BookingSlot созданный слот
type BookingSlot struct {
	ID               int64
	DefenceSessionID int64
	StartTime        types.TimeOfDay
	EndTime          types.TimeOfDay
	IsBooked         bool
	UserID           *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Response созданные слоты в порядке времени начала
type Response struct {
	DefenceSessionID int64
	Slots            []BookingSlot
}

func fromDomain(defenceSessionID int64, slots []*domain.BookingSlot) *Response {
	resp := &Response{
		DefenceSessionID: defenceSessionID,
		Slots:            make([]BookingSlot, 0, len(slots)),
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, BookingSlot{
			ID:               slot.ID,
			DefenceSessionID: slot.DefenceSessionID,
			StartTime:        slot.StartTime,
			EndTime:          slot.EndTime,
			IsBooked:         slot.IsBooked,
			UserID:           slot.UserID,
			CreatedAt:        slot.CreatedAt,
			UpdatedAt:        slot.UpdatedAt,
		})
	}

	return resp
}
