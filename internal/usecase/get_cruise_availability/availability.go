package get_cruise_availability

import "github.com/m04kA/SMC-CruiseBookingService/internal/domain"

// Параметры mock-доступности
const (
	minAvailableCabins   = 10
	availableCabinsRange = 100
	priceJitter          = 20000
	suitePriceJitter     = 30000
)

// buildAvailability строит mock-доступность для каждой даты отправления:
// случайное число свободных кают и цена с надбавкой к базовой.
func buildAvailability(cruise *domain.Cruise, rnd RandomSource) []domain.SailingAvailability {
	sailings := make([]domain.SailingAvailability, 0, len(cruise.SailingDates))

	for _, date := range cruise.SailingDates {
		prices := make(map[string]int64, len(cruise.Prices))
		for cabin, from := range cruise.Prices {
			jitter := priceJitter
			if cabin == domain.CabinSuite {
				jitter = suitePriceJitter
			}
			prices[cabin] = from + int64(rnd.Intn(jitter))
		}

		sailings = append(sailings, domain.SailingAvailability{
			Date:      date,
			Available: rnd.Intn(availableCabinsRange) + minAvailableCabins,
			Prices:    prices,
		})
	}

	return sailings
}
