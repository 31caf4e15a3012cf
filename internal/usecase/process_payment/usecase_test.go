package process_payment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
	"github.com/m04kA/SMC-CruiseBookingService/internal/events"
	bookingRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/booking"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}

type failingRepository struct {
	err error
}

func (r failingRepository) Update(context.Context, string, bookingRepo.MutateFunc) (*domain.Booking, error) {
	return nil, r.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	createdAt = time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)
	paidAt    = time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC)
	txnIDRe   = regexp.MustCompile(`^TXN-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

func seedBooking(t *testing.T, store *bookingRepo.MemoryRepository, status domain.BookingStatus) {
	t.Helper()
	_, err := store.Create(context.Background(), &domain.Booking{
		Reference:   "PHLNCL-pay",
		CruiseID:    1,
		SailingDate: "2024-11-15",
		CabinType:   domain.CabinBalcony,
		Passengers:  []domain.Passenger{{FirstName: "Ana", LastName: "Reyes"}},
		Pricing:     domain.Pricing{Total: 228776, Currency: domain.Currency},
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	})
	require.NoError(t, err)
}

func newTestUseCase(repo BookingRepository, pub EventPublisher) *UseCase {
	uc := NewUseCase(repo, pub, nopLogger{})
	uc.timeProvider = fixedTime{now: paidAt}
	return uc
}

func TestUseCase_Execute_ConfirmsPendingBooking(t *testing.T) {
	store := bookingRepo.NewMemoryRepository()
	seedBooking(t, store, domain.StatusPending)

	pub := &MockEventPublisher{}
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.BookingEvent) bool {
		return e.Type == events.EventBookingConfirmed && e.Status == "confirmed"
	})).Return(nil).Once()

	resp, err := newTestUseCase(store, pub).Execute(context.Background(), &Request{
		Reference:     "PHLNCL-pay",
		PaymentMethod: "credit_card",
		Details:       map[string]interface{}{"cardNumber": "4111111111111111"},
	})
	require.NoError(t, err)

	assert.Regexp(t, txnIDRe, resp.Payment.TransactionID)
	assert.Equal(t, "completed", resp.Payment.Status)
	assert.Equal(t, int64(228776), resp.Payment.Amount)
	assert.Equal(t, "PHP", resp.Payment.Currency)
	assert.Equal(t, "credit_card", resp.Payment.PaymentMethod)
	assert.Equal(t, paidAt, resp.Payment.ProcessedAt)

	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Equal(t, paidAt, resp.Booking.UpdatedAt)
	assert.Equal(t, createdAt, resp.Booking.CreatedAt)
	require.NotNil(t, resp.Booking.Payment)
	assert.Equal(t, resp.Payment, *resp.Booking.Payment)

	pub.AssertExpectations(t)
}

func TestUseCase_Execute_RepaymentReplacesReceipt(t *testing.T) {
	store := bookingRepo.NewMemoryRepository()
	seedBooking(t, store, domain.StatusPending)

	pub := &MockEventPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)
	uc := newTestUseCase(store, pub)

	first, err := uc.Execute(context.Background(), &Request{Reference: "PHLNCL-pay", PaymentMethod: "credit_card"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Reference: "PHLNCL-pay", PaymentMethod: "gcash"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Payment.TransactionID, second.Payment.TransactionID)

	stored, err := store.GetByReference(context.Background(), "PHLNCL-pay")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.Equal(t, "gcash", stored.Payment.PaymentMethod)
	assert.Equal(t, second.Payment.TransactionID, stored.Payment.TransactionID)
}

func TestUseCase_Execute_CancelledBookingIsRejected(t *testing.T) {
	store := bookingRepo.NewMemoryRepository()
	seedBooking(t, store, domain.StatusCancelled)
	pub := &MockEventPublisher{}

	_, err := newTestUseCase(store, pub).Execute(context.Background(), &Request{Reference: "PHLNCL-pay", PaymentMethod: "credit_card"})
	assert.ErrorIs(t, err, ErrBookingCancelled)

	stored, err := store.GetByReference(context.Background(), "PHLNCL-pay")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.Nil(t, stored.Payment)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repo    BookingRepository
		req     *Request
		wantErr error
	}{
		{
			name:    "unknown reference",
			repo:    bookingRepo.NewMemoryRepository(),
			req:     &Request{Reference: "PHLNCL-nope", PaymentMethod: "credit_card"},
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "missing payment method",
			repo:    bookingRepo.NewMemoryRepository(),
			req:     &Request{Reference: "PHLNCL-pay"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing reference",
			repo:    bookingRepo.NewMemoryRepository(),
			req:     &Request{PaymentMethod: "credit_card"},
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "unknown reference without payment method",
			repo:    bookingRepo.NewMemoryRepository(),
			req:     &Request{Reference: "PHLNCL-nope"},
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "storage failure",
			repo:    failingRepository{err: errors.New("connection reset")},
			req:     &Request{Reference: "PHLNCL-pay", PaymentMethod: "credit_card"},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if store, ok := tt.repo.(*bookingRepo.MemoryRepository); ok {
				seedBooking(t, store, domain.StatusPending)
			}
			_, err := newTestUseCase(tt.repo, &MockEventPublisher{}).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
