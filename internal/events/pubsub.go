package events

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// Транспорты событий
const (
	DriverChannel = "channel"
	DriverRedis   = "redis"
)

// Config настройки транспорта событий
type Config struct {
	Driver        string
	ConsumerGroup string
	BufferSize    int64
}

// PubSub пара publisher/subscriber выбранного транспорта
type PubSub struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber

	// gochannel использует один объект для обеих ролей
	shared bool
}

// Close закрывает publisher и subscriber
func (ps *PubSub) Close() error {
	pubErr := ps.Publisher.Close()
	if ps.shared {
		return pubErr
	}
	subErr := ps.Subscriber.Close()
	if pubErr != nil {
		return pubErr
	}
	return subErr
}

// NewPubSub создает транспорт событий: in-process канал или Redis Streams
func NewPubSub(cfg Config, rdb redis.UniversalClient, logger watermill.LoggerAdapter) (*PubSub, error) {
	switch cfg.Driver {
	case "", DriverChannel:
		ch := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: cfg.BufferSize,
		}, logger)
		return &PubSub{Publisher: ch, Subscriber: ch, shared: true}, nil

	case DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("%w: redis driver requires a client", ErrUnknownDriver)
		}

		pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: rdb,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("%w: redis publisher: %v", ErrRouter, err)
		}

		sub, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        rdb,
			ConsumerGroup: cfg.ConsumerGroup,
		}, logger)
		if err != nil {
			_ = pub.Close()
			return nil, fmt.Errorf("%w: redis subscriber: %v", ErrRouter, err)
		}

		return &PubSub{Publisher: pub, Subscriber: sub}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
