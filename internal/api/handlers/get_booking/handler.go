package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings"
)

const (
	msgNotFound = "бронирование не найдено"
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

// Handle GET /api/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/{reference} - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /bookings/{reference} - Failed to get booking: reference=%s, error=%v", reference, err)
		handlers.RespondInternalErrorWithDetails(w, err)
		return
	}

	h.logger.Info("GET /bookings/{reference} - Booking retrieved successfully: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
