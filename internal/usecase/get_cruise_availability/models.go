package get_cruise_availability

import "github.com/m04kA/SMC-CruiseBookingService/internal/domain"

// Request модель запроса доступности круиза
type Request struct {
	CruiseID int64 // ID круиза
}

// Response модель ответа с доступностью по датам отправления
type Response struct {
	CruiseID int64
	Currency string
	Sailings []domain.SailingAvailability
}
