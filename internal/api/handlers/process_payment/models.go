package process_payment

import (
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings/models"
	processPayment "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/process_payment"
)

// PaymentRequest HTTP request model
type PaymentRequest struct {
	PaymentMethod  string                 `json:"paymentMethod"`
	PaymentDetails map[string]interface{} `json:"paymentDetails,omitempty"`
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	Booking *models.BookingResponse `json:"booking"`
	Payment *models.PaymentDTO      `json:"payment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PaymentRequest) ToUseCaseRequest(reference string) *processPayment.Request {
	return &processPayment.Request{
		Reference:     reference,
		PaymentMethod: r.PaymentMethod,
		Details:       r.PaymentDetails,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *processPayment.Response) *PaymentResponse {
	return &PaymentResponse{
		Booking: models.FromDomainBooking(resp.Booking),
		Payment: models.FromDomainPayment(resp.Payment),
	}
}
