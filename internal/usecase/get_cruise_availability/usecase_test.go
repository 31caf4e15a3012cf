package get_cruise_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
	cruiseRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/cruise"
)

// constRandom всегда возвращает n-1, то есть максимальную надбавку
type constRandom struct{}

func (constRandom) Intn(n int) int {
	return n - 1
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	uc := NewUseCase(cruiseRepo.NewRepository(), nopLogger{})
	uc.random = constRandom{}

	resp, err := uc.Execute(context.Background(), &Request{CruiseID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.CruiseID)
	assert.Equal(t, "PHP", resp.Currency)
	require.Len(t, resp.Sailings, 8)

	first := resp.Sailings[0]
	assert.Equal(t, "2024-11-15", first.Date)
	assert.Equal(t, 109, first.Available)
	assert.Equal(t, int64(59900+19999), first.Prices[domain.CabinInterior])
	assert.Equal(t, int64(99900+19999), first.Prices[domain.CabinBalcony])
	assert.Equal(t, int64(149900+29999), first.Prices[domain.CabinSuite])
}

func TestUseCase_Execute_RandomStaysInBounds(t *testing.T) {
	uc := NewUseCase(cruiseRepo.NewRepository(), nopLogger{})

	for i := 0; i < 20; i++ {
		resp, err := uc.Execute(context.Background(), &Request{CruiseID: 2})
		require.NoError(t, err)

		for _, s := range resp.Sailings {
			assert.GreaterOrEqual(t, s.Available, 10)
			assert.Less(t, s.Available, 110)
			assert.GreaterOrEqual(t, s.Prices[domain.CabinInterior], int64(89900))
			assert.Less(t, s.Prices[domain.CabinInterior], int64(89900+20000))
		}
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := NewUseCase(cruiseRepo.NewRepository(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CruiseID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CruiseID: 5})
	assert.ErrorIs(t, err, ErrCruiseNotFound)
}
