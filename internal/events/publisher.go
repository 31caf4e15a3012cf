package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Publisher публикует события бронирований в watermill
type Publisher struct {
	pub   message.Publisher
	topic string
}

// NewPublisher создает публикатор событий поверх watermill publisher
func NewPublisher(pub message.Publisher) *Publisher {
	return &Publisher{
		pub:   pub,
		topic: TopicBookingEvents,
	}
}

// Publish сериализует событие в JSON и отправляет его в топик бронирований
func (p *Publisher) Publish(ctx context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, event.Type, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(metadataEventType, event.Type)
	msg.SetContext(ctx)

	if err := p.pub.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("%w: %s reference=%s: %v", ErrPublish, event.Type, event.Reference, err)
	}

	return nil
}
