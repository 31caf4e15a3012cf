package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

func newTestBooking(reference string) *domain.Booking {
	now := time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		Reference:   reference,
		CruiseID:    1,
		SailingDate: "2024-11-15",
		CabinType:   domain.CabinBalcony,
		Passengers: []domain.Passenger{
			{FirstName: "Juan", LastName: "Dela Cruz", Nationality: "PH", PassportNumber: "P1234567"},
		},
		ContactInfo: domain.ContactInfo{Email: "juan@example.com", Phone: "+63 917 000 0000"},
		Pricing:     domain.Pricing{BasePrice: 99900, PassengerCount: 1, Total: 114388, Currency: "PHP"},
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMemoryRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, newTestBooking("PHLNCL-a"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newTestBooking("PHLNCL-b"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryRepository_CreateDuplicateReference(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestBooking("PHLNCL-a"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestBooking("PHLNCL-a"))
	assert.ErrorIs(t, err, ErrDuplicateReference)
}

func TestMemoryRepository_GetByReference(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetByReference(ctx, "PHLNCL-missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = repo.Create(ctx, newTestBooking("PHLNCL-a"))
	require.NoError(t, err)

	got, err := repo.GetByReference(ctx, "PHLNCL-a")
	require.NoError(t, err)
	assert.Equal(t, "juan@example.com", got.ContactInfo.Email)

	// изменение копии не влияет на хранилище
	got.Status = domain.StatusCancelled
	again, err := repo.GetByReference(ctx, "PHLNCL-a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again.Status)
}

func TestMemoryRepository_Update(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestBooking("PHLNCL-a"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "PHLNCL-a", func(b *domain.Booking) error {
		b.Status = domain.StatusConfirmed
		b.ID = 999
		b.Reference = "PHLNCL-hijack"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "PHLNCL-a", updated.Reference)

	_, err = repo.GetByReference(ctx, "PHLNCL-hijack")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_UpdateFnErrorLeavesBookingUntouched(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	_, err := repo.Create(ctx, newTestBooking("PHLNCL-a"))
	require.NoError(t, err)

	errStop := errors.New("stop")
	_, err = repo.Update(ctx, "PHLNCL-a", func(b *domain.Booking) error {
		b.Status = domain.StatusCancelled
		return errStop
	})
	assert.ErrorIs(t, err, errStop)

	got, err := repo.GetByReference(ctx, "PHLNCL-a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestMemoryRepository_UpdateNotFound(t *testing.T) {
	repo := NewMemoryRepository()
	_, err := repo.Update(context.Background(), "PHLNCL-missing", func(b *domain.Booking) error { return nil })
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_List(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		b := newTestBooking(fmt.Sprintf("PHLNCL-%d", i))
		b.CruiseID = int64(i%2 + 1)
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}
	_, err := repo.Update(ctx, "PHLNCL-1", func(b *domain.Booking) error {
		b.Status = domain.StatusCancelled
		return nil
	})
	require.NoError(t, err)

	all, err := repo.List(ctx, domain.BookingsFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "PHLNCL-0", all[0].Reference)
	assert.Equal(t, "PHLNCL-2", all[2].Reference)

	cancelled := domain.StatusCancelled
	onlyCancelled, err := repo.List(ctx, domain.BookingsFilter{Status: &cancelled})
	require.NoError(t, err)
	require.Len(t, onlyCancelled, 1)
	assert.Equal(t, "PHLNCL-1", onlyCancelled[0].Reference)

	cruiseID := int64(1)
	byCruise, err := repo.List(ctx, domain.BookingsFilter{CruiseID: &cruiseID})
	require.NoError(t, err)
	assert.Len(t, byCruise, 2)
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, newTestBooking("PHLNCL-a"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryRepository_ConcurrentUpdatesAreNotLost(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	_, err := repo.Create(ctx, newTestBooking("PHLNCL-a"))
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "PHLNCL-a", func(b *domain.Booking) error {
				b.Passengers = append(b.Passengers, domain.Passenger{FirstName: "guest"})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByReference(ctx, "PHLNCL-a")
	require.NoError(t, err)
	assert.Len(t, got.Passengers, workers+1)
}
