package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings/models"
)

const (
	msgInvalidCruiseID = "некорректный cruiseId"
	msgInvalidStatus   = "некорректный статус, ожидается pending, confirmed или cancelled"
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

// Handle GET /api/bookings?status=confirmed&cruiseId=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var req models.ListBookingsRequest

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if cruiseIDStr := query.Get("cruiseId"); cruiseIDStr != "" {
		cruiseID, err := strconv.ParseInt(cruiseIDStr, 10, 64)
		if err != nil || cruiseID <= 0 {
			h.logger.Warn("GET /bookings - Invalid cruiseId: %s", cruiseIDStr)
			handlers.RespondBadRequest(w, msgInvalidCruiseID)
			return
		}
		req.CruiseID = &cruiseID
	}

	result, err := h.service.List(r.Context(), &req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalErrorWithDetails(w, err)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
