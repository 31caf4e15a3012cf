package search_cruises

import (
	"context"

	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	Search(ctx context.Context, req *models.SearchCruisesRequest) (*models.SearchCruisesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
