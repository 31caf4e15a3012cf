package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
	"github.com/m04kA/SMC-CruiseBookingService/internal/events"
	bookingRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/booking"
	cruiseRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/cruise"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/pricing"
)

// maxReferenceAttempts сколько раз генерируется номер при коллизиях
const maxReferenceAttempts = 5

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	cruiseRepo   CruiseRepository
	references   ReferenceGenerator
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cruiseRepo CruiseRepository,
	references ReferenceGenerator,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		cruiseRepo:   cruiseRepo,
		references:   references,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: cruise=%d, date=%s, cabin=%s, passengers=%d",
		req.CruiseID, req.SailingDate, req.CabinType, len(req.Passengers))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем круиз и дату отправления по каталогу
	cruise, err := uc.cruiseRepo.GetByID(ctx, req.CruiseID)
	if err != nil {
		if errors.Is(err, cruiseRepo.ErrCruiseNotFound) {
			uc.logger.Warn("CreateBooking: cruise id=%d not found", req.CruiseID)
			return nil, ErrCruiseNotFound
		}
		uc.logger.Error("CreateBooking: failed to get cruise id=%d: %v", req.CruiseID, err)
		return nil, fmt.Errorf("%w: failed to get cruise: %v", ErrInternal, err)
	}

	if !cruise.HasSailingDate(req.SailingDate) {
		uc.logger.Warn("CreateBooking: cruise id=%d does not sail on %s", req.CruiseID, req.SailingDate)
		return nil, ErrSailingDateNotAvailable
	}

	// 3. Считаем стоимость
	price, err := pricing.Compute(req.CabinType, len(req.Passengers))
	if err != nil {
		uc.logger.Warn("CreateBooking: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := uc.timeProvider.Now()

	booking := &domain.Booking{
		CruiseID:        req.CruiseID,
		SailingDate:     req.SailingDate,
		CabinType:       req.CabinType,
		Passengers:      req.Passengers,
		SpecialRequests: req.SpecialRequests,
		ContactInfo:     *req.ContactInfo,
		Pricing:         price,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// 4. Сохраняем, перевыпуская номер при коллизии
	var created *domain.Booking
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		booking.Reference = uc.references.Generate()

		created, err = uc.bookingRepo.Create(ctx, booking)
		if err == nil {
			break
		}
		if !errors.Is(err, bookingRepo.ErrDuplicateReference) {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		uc.logger.Warn("CreateBooking: reference collision on attempt %d", attempt)
	}
	if created == nil {
		uc.logger.Error("CreateBooking: no unique reference after %d attempts", maxReferenceAttempts)
		return nil, fmt.Errorf("%w: could not allocate a unique reference", ErrInternal)
	}

	// 5. Публикуем событие; бронирование уже сохранено, поэтому ошибка не фатальна
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.EventBookingCreated, created)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for reference=%s: %v", created.Reference, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s, total=%d %s",
		created.ID, created.Reference, created.Pricing.Total, created.Pricing.Currency)

	return &Response{Booking: created}, nil
}
