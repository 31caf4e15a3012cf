package get_confirmation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings"
)

const (
	msgNotFound     = "бронирование не найдено"
	msgNotConfirmed = "бронирование не подтверждено"
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

// Handle GET /api/bookings/{reference}/confirmation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	confirmation, err := h.service.GetConfirmation(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{reference}/confirmation - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotConfirmed):
			h.logger.Warn("GET /bookings/{reference}/confirmation - Booking not confirmed: reference=%s", reference)
			handlers.RespondBadRequest(w, msgNotConfirmed)

		default:
			h.logger.Error("GET /bookings/{reference}/confirmation - Failed to build confirmation: reference=%s, error=%v", reference, err)
			handlers.RespondInternalErrorWithDetails(w, err)
		}
		return
	}

	h.logger.Info("GET /bookings/{reference}/confirmation - Confirmation retrieved successfully: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, confirmation)
}
