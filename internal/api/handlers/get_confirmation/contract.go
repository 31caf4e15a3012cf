package get_confirmation

import (
	"context"

	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetConfirmation(ctx context.Context, reference string) (*models.ConfirmationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
