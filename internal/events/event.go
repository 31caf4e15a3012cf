package events

import (
	"time"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// TopicBookingEvents топик, в который публикуются все переходы бронирований
const TopicBookingEvents = "booking-events"

// Типы событий жизненного цикла бронирования
const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

// metadataEventType ключ метаданных сообщения с типом события
const metadataEventType = "event_type"

// BookingEvent is a lifecycle transition of a booking
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	Reference  string    `json:"reference"`
	CruiseID   int64     `json:"cruiseId"`
	Status     string    `json:"status"`
	Total      int64     `json:"total"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewBookingEvent строит событие по текущему состоянию бронирования
func NewBookingEvent(eventType string, b *domain.Booking) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		Reference:  b.Reference,
		CruiseID:   b.CruiseID,
		Status:     string(b.Status),
		Total:      b.Pricing.Total,
		Currency:   b.Pricing.Currency,
		OccurredAt: b.UpdatedAt,
	}
}
