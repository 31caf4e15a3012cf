package process_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
	"github.com/m04kA/SMC-CruiseBookingService/internal/events"
	bookingRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/booking"
)

// UseCase use case для mock-оплаты бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	publisher    EventPublisher
	timeProvider TimeProvider
	newTxnID     func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		newTxnID:     newTransactionID,
		logger:       logger,
	}
}

func newTransactionID() string {
	return domain.TransactionIDPrefix + uuid.NewString()
}

// Execute принимает оплату и подтверждает бронирование.
// Повторная оплата подтвержденного бронирования заменяет квитанцию.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// Реквизиты оплаты в лог не попадают
	uc.logger.Info("ProcessPayment: reference=%s, method=%s", req.Reference, req.PaymentMethod)

	now := uc.timeProvider.Now()
	var payment domain.Payment

	// 1. Атомарно находим бронирование, валидируем запрос, проверяем статус и применяем оплату.
	// Неизвестный номер дает NotFound раньше любых ошибок валидации.
	updated, err := uc.bookingRepo.Update(ctx, req.Reference, func(b *domain.Booking) error {
		if err := validateRequest(req); err != nil {
			return err
		}
		if !b.CanBePaid() {
			return ErrBookingCancelled
		}

		payment = domain.Payment{
			TransactionID: uc.newTxnID(),
			Status:        domain.PaymentStatusCompleted,
			Amount:        b.Pricing.Total,
			Currency:      b.Pricing.Currency,
			PaymentMethod: req.PaymentMethod,
			ProcessedAt:   now,
		}
		b.ApplyPayment(payment, now)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			uc.logger.Warn("ProcessPayment: booking reference=%s not found", req.Reference)
			return nil, ErrBookingNotFound
		case errors.Is(err, ErrInvalidInput):
			uc.logger.Warn("ProcessPayment: validation failed for reference=%s: %v", req.Reference, err)
			return nil, err
		case errors.Is(err, ErrBookingCancelled):
			uc.logger.Warn("ProcessPayment: booking reference=%s is cancelled", req.Reference)
			return nil, ErrBookingCancelled
		default:
			uc.logger.Error("ProcessPayment: failed to update booking reference=%s: %v", req.Reference, err)
			return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
	}

	// 2. Публикуем событие подтверждения
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.EventBookingConfirmed, updated)); err != nil {
		uc.logger.Warn("ProcessPayment: failed to publish event for reference=%s: %v", updated.Reference, err)
	}

	uc.logger.Info("ProcessPayment: booking reference=%s confirmed, transaction=%s, amount=%d %s",
		updated.Reference, payment.TransactionID, payment.Amount, payment.Currency)

	return &Response{
		Booking: updated,
		Payment: payment,
	}, nil
}
