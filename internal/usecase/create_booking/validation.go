package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CruiseID <= 0 {
		return fmt.Errorf("%w: cruiseId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SailingDate) == "" {
		return fmt.Errorf("%w: sailingDate is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.SailingDate); err != nil {
		return fmt.Errorf("%w: sailingDate must be YYYY-MM-DD", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CabinType) == "" {
		return fmt.Errorf("%w: cabinType is required", ErrInvalidInput)
	}

	if len(req.Passengers) == 0 {
		return fmt.Errorf("%w: at least one passenger is required", ErrInvalidInput)
	}
	if len(req.Passengers) > domain.MaxPassengersPerBooking {
		return fmt.Errorf("%w: at most %d passengers per booking", ErrInvalidInput, domain.MaxPassengersPerBooking)
	}
	for i, p := range req.Passengers {
		if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
			return fmt.Errorf("%w: passenger %d must have first and last name", ErrInvalidInput, i+1)
		}
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests exceeds %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	if req.ContactInfo == nil {
		return fmt.Errorf("%w: contactInfo is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ContactInfo.Email) == "" {
		return fmt.Errorf("%w: contactInfo.email is required", ErrInvalidInput)
	}

	return nil
}
