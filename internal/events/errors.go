package events

import "errors"

var (
	// ErrUnknownDriver возвращается при неизвестном транспорте событий
	ErrUnknownDriver = errors.New("events: unknown driver")

	// ErrPublish возвращается, когда событие не удалось опубликовать
	ErrPublish = errors.New("events: failed to publish event")

	// ErrRouter возвращается при ошибке настройки роутера
	ErrRouter = errors.New("events: router setup failed")
)
