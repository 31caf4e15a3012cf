package search_cruises

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/cruises/search
// Body: destination, duration, departureDate, passengers, priceRange (все поля необязательны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SearchCruisesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /cruises/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Search(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /cruises/search - Invalid criteria: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /cruises/search - Search failed: %v", err)
		handlers.RespondInternalErrorWithDetails(w, err)
		return
	}

	h.logger.Info("POST /cruises/search - Search completed: count=%d", result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
