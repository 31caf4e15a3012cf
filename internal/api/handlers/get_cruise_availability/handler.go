package get_cruise_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	getCruiseAvailability "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/get_cruise_availability"
)

const (
	msgInvalidCruiseID = "некорректный ID круиза"
	msgNotFound        = "круиз не найден"
)

type Handler struct {
	useCase GetCruiseAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetCruiseAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/cruises/{id}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем id круиза из URL
	idStr := mux.Vars(r)["id"]
	cruiseID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /cruises/{id}/availability - Invalid cruise ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCruiseID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCruiseAvailability.Request{CruiseID: cruiseID})
	if err != nil {
		switch {
		case errors.Is(err, getCruiseAvailability.ErrInvalidInput):
			h.logger.Warn("GET /cruises/{id}/availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCruiseID)

		case errors.Is(err, getCruiseAvailability.ErrCruiseNotFound):
			h.logger.Warn("GET /cruises/{id}/availability - Cruise not found: id=%d", cruiseID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /cruises/{id}/availability - Failed to get availability: id=%d, error=%v", cruiseID, err)
			handlers.RespondInternalErrorWithDetails(w, err)
		}
		return
	}

	h.logger.Info("GET /cruises/{id}/availability - Availability retrieved successfully: id=%d, sailings_count=%d",
		cruiseID, len(result.Sailings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
