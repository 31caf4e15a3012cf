package booking

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// MutateFunc изменяет бронирование внутри Update. Ошибка отменяет изменение
// и возвращается вызывающему без обёртки.
type MutateFunc func(b *domain.Booking) error

// DB интерфейс для работы с PostgreSQL, реализуется *sql.DB
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Store общий контракт хранилищ бронирований (память и PostgreSQL)
type Store interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Update(ctx context.Context, reference string, fn MutateFunc) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

var (
	_ Store = (*MemoryRepository)(nil)
	_ Store = (*Repository)(nil)
)
