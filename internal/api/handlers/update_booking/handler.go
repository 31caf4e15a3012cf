package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса: можно изменить только specialRequests и contactInfo"
	msgNotFound           = "бронирование не найдено"
	msgCancelled          = "отмененное бронирование нельзя изменить"
	msgUpdated            = "бронирование обновлено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/bookings/{reference}
// Любое поле кроме specialRequests и contactInfo отклоняется при декодировании
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	var req models.UpdateBookingRequest
	// Пустое тело разбирается как пустой запрос: сначала проверяется наличие бронирования
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /bookings/{reference} - Invalid request body: reference=%s, error=%v", reference, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.Update(r.Context(), reference, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{reference} - Validation failed: reference=%s, error=%v", reference, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{reference} - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrBookingCancelled):
			h.logger.Warn("PUT /bookings/{reference} - Booking is cancelled: reference=%s", reference)
			handlers.RespondBadRequest(w, msgCancelled)

		default:
			h.logger.Error("PUT /bookings/{reference} - Failed to update booking: reference=%s, error=%v", reference, err)
			handlers.RespondInternalErrorWithDetails(w, err)
		}
		return
	}

	h.logger.Info("PUT /bookings/{reference} - Booking updated successfully: reference=%s", reference)
	handlers.RespondSuccess(w, http.StatusOK, msgUpdated, booking)
}
