package booking

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// startPostgres поднимает PostgreSQL в контейнере. Без Docker тест пропускается.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres repository test in short mode")
	}

	ctx := context.Background()

	var (
		container *postgres.PostgresContainer
		err       error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("docker unavailable: %v", r)
			}
		}()
		container, err = postgres.RunContainer(ctx,
			testcontainers.WithImage("docker.io/postgres:15.2-alpine"),
			postgres.WithDatabase("cruises"),
			postgres.WithUsername("user"),
			postgres.WithPassword("password"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("skipping postgres repository test: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestRepository_Postgres(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	repo := NewRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))

	b := newTestBooking("PHLNCL-pg")
	needs := "vegetarian"
	b.Passengers[0].SpecialNeeds = &needs

	created, err := repo.Create(ctx, b)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	_, err = repo.Create(ctx, newTestBooking("PHLNCL-pg"))
	assert.ErrorIs(t, err, ErrDuplicateReference)

	got, err := repo.GetByReference(ctx, "PHLNCL-pg")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, b.Pricing, got.Pricing)
	require.Len(t, got.Passengers, 1)
	require.NotNil(t, got.Passengers[0].SpecialNeeds)
	assert.Equal(t, "vegetarian", *got.Passengers[0].SpecialNeeds)
	assert.Nil(t, got.Payment)
	assert.True(t, b.CreatedAt.Equal(got.CreatedAt))

	paidAt := b.CreatedAt.Add(time.Hour)
	updated, err := repo.Update(ctx, "PHLNCL-pg", func(bk *domain.Booking) error {
		bk.ApplyPayment(domain.Payment{TransactionID: "TXN-1", Amount: bk.Pricing.Total, Currency: "PHP"}, paidAt)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	got, err = repo.GetByReference(ctx, "PHLNCL-pg")
	require.NoError(t, err)
	require.NotNil(t, got.Payment)
	assert.Equal(t, "TXN-1", got.Payment.TransactionID)
	assert.True(t, paidAt.Equal(got.UpdatedAt))

	confirmed := domain.StatusConfirmed
	list, err := repo.List(ctx, domain.BookingsFilter{Status: &confirmed})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.GetByReference(ctx, "PHLNCL-missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = repo.Update(ctx, "PHLNCL-missing", func(*domain.Booking) error { return nil })
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
