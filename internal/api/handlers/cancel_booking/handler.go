package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings"
)

const (
	msgNotFound  = "бронирование не найдено"
	msgCancelled = "бронирование отменено"
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

// Handle DELETE /api/bookings/{reference}
// Бронирование не удаляется, а переводится в статус cancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := h.service.Cancel(r.Context(), reference)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings/{reference} - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/{reference} - Failed to cancel booking: reference=%s, error=%v", reference, err)
		handlers.RespondInternalErrorWithDetails(w, err)
		return
	}

	h.logger.Info("DELETE /bookings/{reference} - Booking cancelled successfully: reference=%s", reference)
	handlers.RespondSuccess(w, http.StatusOK, msgCancelled, booking)
}
