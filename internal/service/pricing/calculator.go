package pricing

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// ErrInvalidPassengerCount возвращается при неположительном количестве пассажиров
var ErrInvalidPassengerCount = errors.New("pricing: passenger count must be positive")

// Compute считает стоимость бронирования для типа каюты и количества пассажиров.
// Неизвестный тип каюты считается по тарифу interior.
func Compute(cabinType string, passengerCount int) (domain.Pricing, error) {
	if passengerCount <= 0 {
		return domain.Pricing{}, fmt.Errorf("%w: got %d", ErrInvalidPassengerCount, passengerCount)
	}

	basePrice := BasePrice(cabinType)
	n := int64(passengerCount)

	subtotal := basePrice * n
	taxes := subtotal * domain.VATPercent / 100
	fees := domain.PortFeePerPassenger * n

	return domain.Pricing{
		BasePrice:      basePrice,
		PassengerCount: passengerCount,
		Subtotal:       subtotal,
		Taxes:          taxes,
		Fees:           fees,
		Total:          subtotal + taxes + fees,
		Currency:       domain.Currency,
	}, nil
}

// BasePrice возвращает базовый тариф каюты
func BasePrice(cabinType string) int64 {
	if price, ok := domain.CabinBasePrices[cabinType]; ok {
		return price
	}
	return domain.CabinBasePrices[domain.CabinInterior]
}
