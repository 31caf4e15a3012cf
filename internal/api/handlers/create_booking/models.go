package create_booking

import (
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CruiseID        int64                  `json:"cruiseId"`
	SailingDate     string                 `json:"sailingDate"` // "2024-11-15"
	CabinType       string                 `json:"cabinType"`
	Passengers      []models.PassengerDTO  `json:"passengers"`
	SpecialRequests *string                `json:"specialRequests,omitempty"`
	ContactInfo     *models.ContactInfoDTO `json:"contactInfo"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CruiseID:        r.CruiseID,
		SailingDate:     r.SailingDate,
		CabinType:       r.CabinType,
		Passengers:      models.ToDomainPassengers(r.Passengers),
		SpecialRequests: r.SpecialRequests,
		ContactInfo:     r.ContactInfo.ToDomain(),
	}
}
