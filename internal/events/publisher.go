package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
)

// Conn часть *nats.Conn, нужная публикатору
type Conn interface {
	Publish(subj string, data []byte) error
	Drain() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NatsPublisher публикует события в NATS в формате JSON
type NatsPublisher struct {
	conn   Conn
	prefix string
	logger Logger
	now    func() time.Time
}

// NewNatsPublisher подключается к NATS
func NewNatsPublisher(natsURL, prefix string, logger Logger) (*NatsPublisher, error) {
	nc, err := nats.Connect(natsURL, nats.Name("defence-booking-service"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats %s: %w", natsURL, err)
	}

	return NewPublisher(nc, prefix, logger), nil
}

// NewPublisher создает публикатор поверх готового соединения
func NewPublisher(conn Conn, prefix string, logger Logger) *NatsPublisher {
	return &NatsPublisher{
		conn:   conn,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

func (p *NatsPublisher) PublishBookingSlotsGenerated(defenceSessionID int64, slots []*domain.BookingSlot) error {
	slotIDs := make([]int64, 0, len(slots))
	for _, slot := range slots {
		slotIDs = append(slotIDs, slot.ID)
	}

	return p.publish(EventBookingSlotsGenerated, BookingSlotsGeneratedEvent{
		EventID:          uuid.New().String(),
		EventType:        EventBookingSlotsGenerated,
		DefenceSessionID: defenceSessionID,
		SlotIDs:          slotIDs,
		OccurredAt:       p.now().UTC(),
	})
}

func (p *NatsPublisher) PublishBookingSlotChosen(slot *domain.BookingSlot) error {
	var userID int64
	if slot.UserID != nil {
		userID = *slot.UserID
	}

	return p.publish(EventBookingSlotChosen, BookingSlotChosenEvent{
		EventID:          uuid.New().String(),
		EventType:        EventBookingSlotChosen,
		BookingSlotID:    slot.ID,
		DefenceSessionID: slot.DefenceSessionID,
		UserID:           userID,
		StartTime:        slot.StartTime.String(),
		EndTime:          slot.EndTime.String(),
		OccurredAt:       p.now().UTC(),
	})
}

// Close дожидается отправки буферизованных сообщений и закрывает соединение
func (p *NatsPublisher) Close() error {
	return p.conn.Drain()
}

func (p *NatsPublisher) subject(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}

func (p *NatsPublisher) publish(eventType string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	subject := p.subject(eventType)
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Error("events: failed to publish to %s: %v", subject, err)
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	p.logger.Info("events: published %s", subject)
	return nil
}

// NopPublisher используется, когда публикация событий выключена
type NopPublisher struct{}

func (NopPublisher) PublishBookingSlotsGenerated(int64, []*domain.BookingSlot) error { return nil }
func (NopPublisher) PublishBookingSlotChosen(*domain.BookingSlot) error             { return nil }
func (NopPublisher) Close() error                                                   { return nil }
