package get_cruise_availability

import (
	"context"
	"math/rand"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// CruiseRepository интерфейс каталога круизов
type CruiseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cruise, error)
}

// RandomSource источник случайных чисел (для тестирования)
type RandomSource interface {
	Intn(n int) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// globalRandom использует потокобезопасный глобальный генератор math/rand
type globalRandom struct{}

// Intn возвращает случайное число в [0, n)
func (globalRandom) Intn(n int) int {
	return rand.Intn(n)
}
