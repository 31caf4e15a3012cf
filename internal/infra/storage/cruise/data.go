package cruise

import "github.com/m04kA/SMC-CruiseBookingService/internal/domain"

// defaultCruises каталог круизов, зашитый в процесс
func defaultCruises() []domain.Cruise {
	return []domain.Cruise{
		{
			ID:       1,
			Name:     "7-Day Philippines Island Hopping",
			Duration: 7,
			Ship:     "Philippines NCL Spirit",
			Ports: []domain.Port{
				{Name: "Manila", Country: "Philippines", ArrivalTime: "08:00", DepartureTime: "18:00"},
				{Name: "Boracay", Country: "Philippines", ArrivalTime: "07:00", DepartureTime: "17:00"},
				{Name: "Palawan", Country: "Philippines", ArrivalTime: "08:00", DepartureTime: "16:00"},
				{Name: "Bohol", Country: "Philippines", ArrivalTime: "09:00", DepartureTime: "18:00"},
				{Name: "Cebu", Country: "Philippines", ArrivalTime: "07:00", DepartureTime: "19:00"},
			},
			Prices: map[string]int64{
				domain.CabinInterior:  59900,
				domain.CabinOceanview: 79900,
				domain.CabinBalcony:   99900,
				domain.CabinSuite:     149900,
			},
			Currency: domain.Currency,
			Inclusions: []string{
				"All meals and snacks",
				"Entertainment and shows",
				"Pool and fitness facilities",
				"Kids club activities",
				"Wi-Fi (basic package)",
				"Philippines NCL exclusive amenities",
			},
			Highlights: []string{
				"White sand beaches of Boracay",
				"Underground River in Palawan",
				"Chocolate Hills in Bohol",
				"Cultural sites in Manila",
				"Diving and snorkeling opportunities",
			},
			SailingDates: []string{
				"2024-11-15", "2024-11-29", "2024-12-13", "2024-12-27",
				"2025-01-10", "2025-01-24", "2025-02-07", "2025-02-21",
			},
		},
		{
			ID:       2,
			Name:     "10-Day Philippines & Southeast Asia",
			Duration: 10,
			Ship:     "Philippines NCL Jade",
			Ports: []domain.Port{
				{Name: "Manila", Country: "Philippines", ArrivalTime: "08:00", DepartureTime: "18:00"},
				{Name: "Boracay", Country: "Philippines", ArrivalTime: "07:00", DepartureTime: "17:00"},
				{Name: "Palawan", Country: "Philippines", ArrivalTime: "08:00", DepartureTime: "16:00"},
				{Name: "Singapore", Country: "Singapore", ArrivalTime: "06:00", DepartureTime: "23:00"},
				{Name: "Kuala Lumpur", Country: "Malaysia", ArrivalTime: "08:00", DepartureTime: "18:00"},
			},
			Prices: map[string]int64{
				domain.CabinInterior:  89900,
				domain.CabinOceanview: 119900,
				domain.CabinBalcony:   149900,
				domain.CabinSuite:     219900,
			},
			Currency: domain.Currency,
			Inclusions: []string{
				"All meals and snacks",
				"Entertainment and shows",
				"Pool and fitness facilities",
				"Kids club activities",
				"Wi-Fi (premium package)",
				"Philippines NCL premium services",
				"Shore excursion credits",
			},
			Highlights: []string{
				"Extended Philippines exploration",
				"Singapore Gardens by the Bay",
				"Malaysian cultural experience",
				"Multiple UNESCO World Heritage sites",
				"Diverse culinary experiences",
			},
			SailingDates: []string{
				"2024-11-20", "2024-12-05", "2024-12-20",
				"2025-01-05", "2025-01-20", "2025-02-05",
			},
		},
	}
}
