package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
	"github.com/m04kA/SMC-CruiseBookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id               BIGSERIAL PRIMARY KEY,
	reference        TEXT        NOT NULL UNIQUE,
	cruise_id        BIGINT      NOT NULL,
	sailing_date     TEXT        NOT NULL,
	cabin_type       TEXT        NOT NULL,
	passengers       JSONB       NOT NULL,
	special_requests TEXT,
	contact_info     JSONB       NOT NULL,
	pricing          JSONB       NOT NULL,
	status           TEXT        NOT NULL,
	payment          JSONB,
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS bookings_status_idx ON bookings (status);
CREATE INDEX IF NOT EXISTS bookings_cruise_id_idx ON bookings (cruise_id);
`

var bookingColumns = []string{
	"id",
	"reference",
	"cruise_id",
	"sailing_date",
	"cabin_type",
	"passengers",
	"special_requests",
	"contact_info",
	"pricing",
	"status",
	"payment",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DB
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу bookings, если её ещё нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Create создает новое бронирование.
// При совпадении номера возвращает ErrDuplicateReference, чтобы вызывающий сгенерировал новый.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	row, err := toRow(booking)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"cruise_id",
			"sailing_date",
			"cabin_type",
			"passengers",
			"special_requests",
			"contact_info",
			"pricing",
			"status",
			"payment",
			"created_at",
			"updated_at",
		).
		Values(
			booking.Reference,
			booking.CruiseID,
			booking.SailingDate,
			booking.CabinType,
			row.passengers,
			booking.SpecialRequests,
			row.contactInfo,
			row.pricing,
			booking.Status,
			row.payment,
			booking.CreatedAt,
			booking.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := booking.Clone()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return created, nil
}

// GetByReference получает бронирование по номеру
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// Update блокирует строку (FOR UPDATE), применяет fn и сохраняет изменяемые поля в одной транзакции
func (r *Repository) Update(ctx context.Context, reference string, fn MutateFunc) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - begin: %v", ErrTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"reference": reference}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	id, createdAt := booking.ID, booking.CreatedAt
	if err := fn(booking); err != nil {
		return nil, err
	}
	booking.ID, booking.Reference, booking.CreatedAt = id, reference, createdAt

	row, err := toRow(booking)
	if err != nil {
		return nil, err
	}

	query, args, err = psqlbuilder.Update("bookings").
		Set("passengers", row.passengers).
		Set("special_requests", booking.SpecialRequests).
		Set("contact_info", row.contactInfo).
		Set("pricing", row.pricing).
		Set("status", booking.Status).
		Set("payment", row.payment).
		Set("updated_at", booking.UpdatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: Update - commit: %v", ErrTransaction, err)
	}

	return booking, nil
}

// List получает бронирования с фильтрацией по статусу и круизу
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("id ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.CruiseID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cruise_id": *filter.CruiseID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Вспомогательные типы и функции

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// JSONB передаётся строками: []byte драйвер pq отправил бы как bytea
type encodedRow struct {
	passengers  string
	contactInfo string
	pricing     string
	payment     sql.NullString
}

func toRow(b *domain.Booking) (*encodedRow, error) {
	passengers, err := json.Marshal(b.Passengers)
	if err != nil {
		return nil, fmt.Errorf("%w: passengers: %v", ErrEncode, err)
	}
	contactInfo, err := json.Marshal(b.ContactInfo)
	if err != nil {
		return nil, fmt.Errorf("%w: contact info: %v", ErrEncode, err)
	}
	pricing, err := json.Marshal(b.Pricing)
	if err != nil {
		return nil, fmt.Errorf("%w: pricing: %v", ErrEncode, err)
	}

	row := &encodedRow{
		passengers:  string(passengers),
		contactInfo: string(contactInfo),
		pricing:     string(pricing),
	}

	if b.Payment != nil {
		payment, err := json.Marshal(b.Payment)
		if err != nil {
			return nil, fmt.Errorf("%w: payment: %v", ErrEncode, err)
		}
		row.payment = sql.NullString{String: string(payment), Valid: true}
	}

	return row, nil
}

func scanBooking(s rowScanner) (*domain.Booking, error) {
	var (
		booking                                   domain.Booking
		passengers, contactInfo, pricing, payment []byte
		specialRequests                           sql.NullString
		status                                    string
	)

	err := s.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.CruiseID,
		&booking.SailingDate,
		&booking.CabinType,
		&passengers,
		&specialRequests,
		&contactInfo,
		&pricing,
		&status,
		&payment,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
	}

	booking.Status = domain.BookingStatus(status)
	if specialRequests.Valid {
		booking.SpecialRequests = &specialRequests.String
	}

	if err := json.Unmarshal(passengers, &booking.Passengers); err != nil {
		return nil, fmt.Errorf("%w: decode passengers: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(contactInfo, &booking.ContactInfo); err != nil {
		return nil, fmt.Errorf("%w: decode contact info: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(pricing, &booking.Pricing); err != nil {
		return nil, fmt.Errorf("%w: decode pricing: %v", ErrScanRow, err)
	}
	if payment != nil {
		booking.Payment = &domain.Payment{}
		if err := json.Unmarshal(payment, booking.Payment); err != nil {
			return nil, fmt.Errorf("%w: decode payment: %v", ErrScanRow, err)
		}
	}

	return &booking, nil
}
