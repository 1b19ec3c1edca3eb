package events

import (
	"time"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
)

const (
	EventBookingSlotsGenerated = "booking_slots.generated"
	EventBookingSlotChosen     = "booking_slot.chosen"
)

// BookingSlotsGeneratedEvent слоты сессии защиты созданы
type BookingSlotsGeneratedEvent struct {
	EventID          string    `json:"event_id"`
	EventType        string    `json:"event_type"`
	DefenceSessionID int64     `json:"defence_session_id"`
	SlotIDs          []int64   `json:"slot_ids"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// BookingSlotChosenEvent студент занял слот
type BookingSlotChosenEvent struct {
	EventID          string    `json:"event_id"`
	EventType        string    `json:"event_type"`
	BookingSlotID    int64     `json:"booking_slot_id"`
	DefenceSessionID int64     `json:"defence_session_id"`
	UserID           int64     `json:"user_id"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher публикует доменные события после фиксации транзакции
type EventPublisher interface {
	PublishBookingSlotsGenerated(defenceSessionID int64, slots []*domain.BookingSlot) error
	PublishBookingSlotChosen(slot *domain.BookingSlot) error
	Close() error
}
