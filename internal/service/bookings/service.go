package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
	"github.com/m04kA/SMC-CruiseBookingService/internal/events"
	bookingRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/booking"
	cruiseRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/cruise"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	cruiseRepo   CruiseRepository
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	cruiseRepo CruiseRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		cruiseRepo:   cruiseRepo,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByReference получает бронирование по номеру
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	booking, err := s.getBooking(ctx, "GetByReference", reference)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByReference: successfully fetched booking reference=%s", reference)
	return models.FromDomainBooking(booking), nil
}

// Update изменяет пожелания и контакты бронирования.
// Отмененное бронирование не изменяется.
func (s *Service) Update(ctx context.Context, reference string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking reference=%s", reference)

	now := s.timeProvider.Now()

	// Валидация внутри Update: неизвестный номер дает NotFound раньше ошибок запроса
	updated, err := s.bookingRepo.Update(ctx, reference, func(b *domain.Booking) error {
		if err := validateUpdate(req); err != nil {
			return err
		}
		if !b.CanBeUpdated() {
			return ErrBookingCancelled
		}

		if req.SpecialRequests != nil {
			specialRequests := *req.SpecialRequests
			b.SpecialRequests = &specialRequests
		}
		if req.ContactInfo != nil {
			b.ContactInfo = *req.ContactInfo.ToDomain()
		}
		b.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError("Update", reference, err)
	}

	s.publish(ctx, "Update", events.EventBookingUpdated, updated)

	s.logger.Info("Update: successfully updated booking reference=%s", reference)
	return models.FromDomainBooking(updated), nil
}

// Cancel отменяет бронирование (мягкое удаление).
// Повторная отмена не меняет бронирование и не считается ошибкой.
func (s *Service) Cancel(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking reference=%s", reference)

	now := s.timeProvider.Now()
	changed := false

	updated, err := s.bookingRepo.Update(ctx, reference, func(b *domain.Booking) error {
		changed = b.Cancel(now)
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError("Cancel", reference, err)
	}

	if !changed {
		s.logger.Info("Cancel: booking reference=%s is already cancelled", reference)
		return models.FromDomainBooking(updated), nil
	}

	s.publish(ctx, "Cancel", events.EventBookingCancelled, updated)

	s.logger.Info("Cancel: successfully cancelled booking reference=%s", reference)
	return models.FromDomainBooking(updated), nil
}

// GetConfirmation собирает подтверждение для оплаченного бронирования
func (s *Service) GetConfirmation(ctx context.Context, reference string) (*models.ConfirmationResponse, error) {
	s.logger.Info("GetConfirmation: fetching confirmation for reference=%s", reference)

	booking, err := s.getBooking(ctx, "GetConfirmation", reference)
	if err != nil {
		return nil, err
	}

	if !booking.IsConfirmed() {
		s.logger.Warn("GetConfirmation: booking reference=%s is not confirmed, status=%s", reference, booking.Status)
		return nil, ErrNotConfirmed
	}

	details := models.CruiseDetailsDTO{
		CruiseID:    booking.CruiseID,
		SailingDate: booking.SailingDate,
		CabinType:   booking.CabinType,
	}

	// Каталог только дополняет подтверждение названием круиза
	cruise, err := s.cruiseRepo.GetByID(ctx, booking.CruiseID)
	switch {
	case err == nil:
		details.CruiseName = cruise.Name
		details.Ship = cruise.Ship
	case errors.Is(err, cruiseRepo.ErrCruiseNotFound):
		s.logger.Warn("GetConfirmation: cruise id=%d of booking reference=%s not in catalog", booking.CruiseID, reference)
	default:
		s.logger.Error("GetConfirmation: failed to get cruise id=%d: %v", booking.CruiseID, err)
		return nil, fmt.Errorf("%w: GetConfirmation - catalog error: %v", ErrInternal, err)
	}

	resp := &models.ConfirmationResponse{
		BookingReference:    booking.Reference,
		CruiseDetails:       details,
		Passengers:          models.FromDomainPassengers(booking.Passengers),
		TotalAmount:         booking.Pricing.Total,
		Currency:            booking.Pricing.Currency,
		CheckInInstructions: append([]string(nil), domain.CheckInInstructions...),
		EmergencyContact:    domain.EmergencyContact,
		ConfirmationDate:    booking.UpdatedAt,
	}
	if booking.Payment != nil {
		resp.TransactionID = booking.Payment.TransactionID
	}

	s.logger.Info("GetConfirmation: successfully built confirmation for reference=%s", reference)
	return resp, nil
}

// List получает бронирования с фильтрацией по статусу и круизу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%q, cruiseId=%d", lo.FromPtr(req.Status), lo.FromPtr(req.CruiseID))

	var filter domain.BookingsFilter
	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}
	filter.CruiseID = req.CruiseID

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, reference string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking reference=%s not found", op, reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking reference=%s: %v", op, reference, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) mapUpdateError(op, reference string, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking reference=%s not found", op, reference)
		return ErrBookingNotFound
	case errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: invalid request for reference=%s: %v", op, reference, err)
		return err
	case errors.Is(err, ErrBookingCancelled):
		s.logger.Warn("%s: booking reference=%s is cancelled", op, reference)
		return ErrBookingCancelled
	default:
		s.logger.Error("%s: repository error for booking reference=%s: %v", op, reference, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// publish отправляет событие; ошибка публикации не откатывает изменение
func (s *Service) publish(ctx context.Context, op, eventType string, b *domain.Booking) {
	if err := s.publisher.Publish(ctx, events.NewBookingEvent(eventType, b)); err != nil {
		s.logger.Warn("%s: failed to publish %s for reference=%s: %v", op, eventType, b.Reference, err)
	}
}

func validateUpdate(req *models.UpdateBookingRequest) error {
	if req == nil || req.IsEmpty() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests exceeds %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	if req.ContactInfo != nil && strings.TrimSpace(req.ContactInfo.Email) == "" {
		return fmt.Errorf("%w: contactInfo.email is required", ErrInvalidInput)
	}

	return nil
}
