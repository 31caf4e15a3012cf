package events

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// TransitionRecorder учитывает переходы бронирований в метриках
type TransitionRecorder interface {
	RecordTransition(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewRouter создает watermill роутер с обработчиком аудита бронирований
func NewRouter(
	sub message.Subscriber,
	recorder TransitionRecorder,
	logger Logger,
	watermillLogger watermill.LoggerAdapter,
) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouter, err)
	}

	router.AddMiddleware(middleware.Recoverer)

	router.AddNoPublisherHandler(
		"booking_audit",
		TopicBookingEvents,
		sub,
		auditHandler(recorder, logger),
	)

	return router, nil
}

// auditHandler пишет строку аудита и увеличивает счетчик переходов.
// Нечитаемые сообщения подтверждаются, чтобы не блокировать поток.
func auditHandler(recorder TransitionRecorder, logger Logger) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		var event BookingEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			logger.Error("Audit: malformed booking event uuid=%s: %v", msg.UUID, err)
			return nil
		}

		if recorder != nil {
			recorder.RecordTransition(event.Type)
		}

		logger.Info("Audit: %s reference=%s booking_id=%d status=%s total=%d %s",
			event.Type, event.Reference, event.BookingID, event.Status, event.Total, event.Currency)
		return nil
	}
}
