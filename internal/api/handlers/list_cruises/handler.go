package list_cruises

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog/models"
)

const (
	msgInvalidDuration   = "некорректная длительность круиза"
	msgInvalidPriceRange = "некорректный диапазон цен, ожидается <min>-<max>"
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

// Handle GET /api/cruises
// Query params: duration, priceRange (50000-90000), departure (префикс даты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var req models.ListCruisesRequest

	if durationStr := query.Get("duration"); durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil || duration <= 0 {
			h.logger.Warn("GET /cruises - Invalid duration: %s", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.Duration = &duration
	}

	if priceRange := query.Get("priceRange"); priceRange != "" {
		req.PriceRange = &priceRange
	}

	if departure := query.Get("departure"); departure != "" {
		req.Departure = &departure
	}

	result, err := h.service.ListCruises(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("GET /cruises - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPriceRange)
			return
		}
		h.logger.Error("GET /cruises - Failed to list cruises: %v", err)
		handlers.RespondInternalErrorWithDetails(w, err)
		return
	}

	h.logger.Info("GET /cruises - Cruises retrieved successfully: count=%d", result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
