package catalog

import (
	"context"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// CruiseRepository интерфейс каталога круизов
type CruiseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cruise, error)
	List(ctx context.Context, filter domain.CruisesFilter) ([]*domain.Cruise, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
