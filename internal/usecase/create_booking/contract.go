package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
	"github.com/m04kA/SMC-CruiseBookingService/internal/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CruiseRepository интерфейс каталога круизов
type CruiseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cruise, error)
}

// ReferenceGenerator генератор номеров бронирований
type ReferenceGenerator interface {
	Generate() string
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
