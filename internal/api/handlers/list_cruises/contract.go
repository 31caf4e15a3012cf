package list_cruises

import (
	"context"

	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCruises(ctx context.Context, req *models.ListCruisesRequest) (*models.CruiseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
