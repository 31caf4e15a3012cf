package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCruiseNotFound     = "круиз не найден в каталоге"
	msgSailingDate        = "круиз не отправляется в выбранную дату"
	msgCreated            = "бронирование создано"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: cruise_id=%d, error=%v", req.CruiseID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrCruiseNotFound):
			h.logger.Warn("POST /bookings - Cruise not found: cruise_id=%d", req.CruiseID)
			handlers.RespondBadRequest(w, msgCruiseNotFound)

		case errors.Is(err, createBooking.ErrSailingDateNotAvailable):
			h.logger.Warn("POST /bookings - Sailing date not available: cruise_id=%d, date=%s", req.CruiseID, req.SailingDate)
			handlers.RespondBadRequest(w, msgSailingDate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: cruise_id=%d, error=%v", req.CruiseID, err)
			handlers.RespondInternalErrorWithDetails(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s",
		result.Booking.ID, result.Booking.Reference)
	handlers.RespondSuccess(w, http.StatusCreated, msgCreated, models.FromDomainBooking(result.Booking))
}
