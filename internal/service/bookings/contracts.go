package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
	"github.com/m04kA/SMC-CruiseBookingService/internal/events"
	bookingRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Update(ctx context.Context, reference string, fn bookingRepo.MutateFunc) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CruiseRepository интерфейс каталога круизов
type CruiseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cruise, error)
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
