package get_cruise

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog"
)

const (
	msgInvalidCruiseID = "некорректный ID круиза"
	msgNotFound        = "круиз не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/cruises/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /cruises/{id} - Invalid cruise ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCruiseID)
		return
	}

	cruise, err := h.service.GetCruise(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrCruiseNotFound) {
			h.logger.Warn("GET /cruises/{id} - Cruise not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /cruises/{id} - Failed to get cruise: id=%d, error=%v", id, err)
		handlers.RespondInternalErrorWithDetails(w, err)
		return
	}

	h.logger.Info("GET /cruises/{id} - Cruise retrieved successfully: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, cruise)
}
