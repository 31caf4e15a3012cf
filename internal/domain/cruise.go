package domain

// Port is a stop on a cruise itinerary
type Port struct {
	Name          string
	Country       string
	ArrivalTime   string // HH:MM
	DepartureTime string // HH:MM
}

// Cruise is a read-only catalog record
type Cruise struct {
	ID           int64
	Name         string
	Duration     int // days
	Ship         string
	Ports        []Port
	Prices       map[string]int64 // cabin type -> "from" price
	Currency     string
	Inclusions   []string
	Highlights   []string
	SailingDates []string // YYYY-MM-DD
}

// HasSailingDate returns true if the cruise departs on the given date
func (c *Cruise) HasSailingDate(date string) bool {
	for _, d := range c.SailingDates {
		if d == date {
			return true
		}
	}
	return false
}

// FromPrice returns the cheapest advertised price (interior cabin)
func (c *Cruise) FromPrice() int64 {
	return c.Prices[CabinInterior]
}

// SailingAvailability is a mock availability snapshot for one sailing
type SailingAvailability struct {
	Date      string
	Available int
	Prices    map[string]int64
}

// CruisesFilter фильтр каталога круизов
type CruisesFilter struct {
	Duration  *int    // Длительность в днях
	MinPrice  *int64  // Нижняя граница цены interior
	MaxPrice  *int64  // Верхняя граница цены interior
	Departure *string // Префикс даты отправления ("2024-12" или "2024-12-13")

	Destination   *string // Подстрока названия порта, без учета регистра
	DepartureFrom *string // Есть отправление в эту дату (YYYY-MM-DD) или позже
}

// Clone returns a deep copy of the catalog record
func (c *Cruise) Clone() *Cruise {
	if c == nil {
		return nil
	}

	cp := *c
	cp.Ports = append([]Port(nil), c.Ports...)
	cp.Inclusions = append([]string(nil), c.Inclusions...)
	cp.Highlights = append([]string(nil), c.Highlights...)
	cp.SailingDates = append([]string(nil), c.SailingDates...)

	cp.Prices = make(map[string]int64, len(c.Prices))
	for cabin, price := range c.Prices {
		cp.Prices[cabin] = price
	}

	return &cp
}
