package get_cruise_availability

import (
	getCruiseAvailability "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/get_cruise_availability"
)

// SailingResponse доступность одной даты отправления; цены в валюте каталога (PHP)
type SailingResponse struct {
	Date      string           `json:"date"`
	Available int              `json:"available"`
	Price     map[string]int64 `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в список дат отправления
func FromUseCaseResponse(resp *getCruiseAvailability.Response) []SailingResponse {
	sailings := make([]SailingResponse, 0, len(resp.Sailings))
	for _, s := range resp.Sailings {
		sailings = append(sailings, SailingResponse{
			Date:      s.Date,
			Available: s.Available,
			Price:     s.Prices,
		})
	}
	return sailings
}
