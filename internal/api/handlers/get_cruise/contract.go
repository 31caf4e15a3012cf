package get_cruise

import (
	"context"

	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetCruise(ctx context.Context, id int64) (*models.CruiseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
