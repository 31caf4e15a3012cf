package get_cruise_availability

import (
	"context"

	getCruiseAvailability "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/get_cruise_availability"
)

type GetCruiseAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getCruiseAvailability.Request) (*getCruiseAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
