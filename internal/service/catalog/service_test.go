package catalog

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cruiseRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/cruise"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(cruiseRepo.NewRepository(), nopLogger{})
}

func TestService_GetCruise(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetCruise(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "10-Day Philippines & Southeast Asia", resp.Name)
	assert.Equal(t, models.PriceDTO{From: 219900, Currency: "PHP"}, resp.Price["suite"])
	assert.Len(t, resp.Ports, 5)

	_, err = svc.GetCruise(context.Background(), 3)
	assert.ErrorIs(t, err, ErrCruiseNotFound)
}

func TestService_ListCruises(t *testing.T) {
	svc := newTestService()

	all, err := svc.ListCruises(context.Background(), &models.ListCruisesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Count)

	cheap, err := svc.ListCruises(context.Background(), &models.ListCruisesRequest{PriceRange: lo.ToPtr("80000-90000")})
	require.NoError(t, err)
	require.Equal(t, 1, cheap.Count)
	assert.Equal(t, int64(2), cheap.Cruises[0].ID)

	february, err := svc.ListCruises(context.Background(), &models.ListCruisesRequest{
		Duration:  lo.ToPtr(7),
		Departure: lo.ToPtr("2025-02"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, february.Count)
	assert.Equal(t, int64(1), february.Cruises[0].ID)
}

func TestService_ListCruises_InvalidPriceRange(t *testing.T) {
	svc := newTestService()

	for _, priceRange := range []string{"cheap", "100-", "9000-100", "1-2-3"} {
		_, err := svc.ListCruises(context.Background(), &models.ListCruisesRequest{PriceRange: lo.ToPtr(priceRange)})
		assert.ErrorIs(t, err, ErrInvalidInput, priceRange)
	}
}

func TestService_Search(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name    string
		req     *models.SearchCruisesRequest
		wantIDs []int64
	}{
		{
			name:    "empty criteria",
			req:     &models.SearchCruisesRequest{},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "destination",
			req:     &models.SearchCruisesRequest{Destination: lo.ToPtr("kuala")},
			wantIDs: []int64{2},
		},
		{
			name:    "blank destination is ignored",
			req:     &models.SearchCruisesRequest{Destination: lo.ToPtr("  ")},
			wantIDs: []int64{1, 2},
		},
		{
			name: "destination, duration and departure date",
			req: &models.SearchCruisesRequest{
				Destination:   lo.ToPtr("Palawan"),
				Duration:      lo.ToPtr(7),
				DepartureDate: lo.ToPtr("2025-01-01"),
				Passengers:    lo.ToPtr(2),
			},
			wantIDs: []int64{1},
		},
		{
			name:    "departure date after the last sailing",
			req:     &models.SearchCruisesRequest{DepartureDate: lo.ToPtr("2026-01-01")},
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Search(context.Background(), tt.req)
			require.NoError(t, err)

			ids := lo.Map(resp.Cruises, func(c models.CruiseResponse, _ int) int64 { return c.ID })
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), resp.Count)
			assert.Equal(t, *tt.req, resp.SearchCriteria)
		})
	}
}

func TestService_Search_InvalidCriteria(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  *models.SearchCruisesRequest
	}{
		{"bad date", &models.SearchCruisesRequest{DepartureDate: lo.ToPtr("15/11/2024")}},
		{"zero duration", &models.SearchCruisesRequest{Duration: lo.ToPtr(0)}},
		{"negative passengers", &models.SearchCruisesRequest{Passengers: lo.ToPtr(-1)}},
		{"bad price range", &models.SearchCruisesRequest{PriceRange: lo.ToPtr("cheap")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
