package models

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

// BookingSlotResponse слот бронирования
type BookingSlotResponse struct {
	ID               int64
	DefenceSessionID int64
	StartTime        types.TimeOfDay
	EndTime          types.TimeOfDay
	IsBooked         bool
	UserID           *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FromDomainBookingSlot конвертирует доменную модель в ответ сервиса
func FromDomainBookingSlot(slot *domain.BookingSlot) *BookingSlotResponse {
	return &BookingSlotResponse{
		ID:               slot.ID,
		DefenceSessionID: slot.DefenceSessionID,
		StartTime:        slot.StartTime,
		EndTime:          slot.EndTime,
		IsBooked:         slot.IsBooked,
		UserID:           slot.UserID,
		CreatedAt:        slot.CreatedAt,
		UpdatedAt:        slot.UpdatedAt,
	}
}

// FromDomainBookingSlots конвертирует список слотов
func FromDomainBookingSlots(slots []*domain.BookingSlot) []*BookingSlotResponse {
	result := make([]*BookingSlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, FromDomainBookingSlot(slot))
	}
	return result
}
