package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

var (
	// ErrInvalidPriceRange возвращается при некорректном диапазоне цен
	ErrInvalidPriceRange = errors.New("priceRange must be <min>-<max>")

	// ErrInvalidSearch возвращается при некорректных критериях поиска
	ErrInvalidSearch = errors.New("invalid search criteria")
)

const dateLayout = "2006-01-02"

// Request модели

// ListCruisesRequest фильтр каталога
type ListCruisesRequest struct {
	Duration   *int    `json:"duration,omitempty"`   // Длительность в днях
	PriceRange *string `json:"priceRange,omitempty"` // "50000-90000"
	Departure  *string `json:"departure,omitempty"`  // Префикс даты "2024-12"
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListCruisesRequest) ToDomainFilter() (domain.CruisesFilter, error) {
	filter := domain.CruisesFilter{
		Duration:  r.Duration,
		Departure: r.Departure,
	}

	if r.PriceRange != nil {
		min, max, err := parsePriceRange(*r.PriceRange)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &min
		filter.MaxPrice = &max
	}

	return filter, nil
}

// SearchCruisesRequest критерии поиска круизов
type SearchCruisesRequest struct {
	Destination   *string `json:"destination,omitempty"`   // Подстрока названия порта
	Duration      *int    `json:"duration,omitempty"`      // Точная длительность в днях
	DepartureDate *string `json:"departureDate,omitempty"` // Отправление в эту дату или позже
	Passengers    *int    `json:"passengers,omitempty"`    // Возвращается в критериях, не фильтрует
	PriceRange    *string `json:"priceRange,omitempty"`    // "50000-90000"
}

// ToDomainFilter конвертирует критерии поиска в domain фильтр
func (r *SearchCruisesRequest) ToDomainFilter() (domain.CruisesFilter, error) {
	var filter domain.CruisesFilter

	if r.Destination != nil && strings.TrimSpace(*r.Destination) != "" {
		destination := strings.TrimSpace(*r.Destination)
		filter.Destination = &destination
	}

	if r.Duration != nil {
		if *r.Duration <= 0 {
			return filter, fmt.Errorf("%w: duration must be positive", ErrInvalidSearch)
		}
		filter.Duration = r.Duration
	}

	if r.DepartureDate != nil && *r.DepartureDate != "" {
		if _, err := time.Parse(dateLayout, *r.DepartureDate); err != nil {
			return filter, fmt.Errorf("%w: departureDate must be YYYY-MM-DD", ErrInvalidSearch)
		}
		filter.DepartureFrom = r.DepartureDate
	}

	if r.Passengers != nil && *r.Passengers <= 0 {
		return filter, fmt.Errorf("%w: passengers must be positive", ErrInvalidSearch)
	}

	if r.PriceRange != nil {
		min, max, err := parsePriceRange(*r.PriceRange)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &min
		filter.MaxPrice = &max
	}

	return filter, nil
}

func parsePriceRange(s string) (int64, int64, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidPriceRange
	}

	min, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidPriceRange, err)
	}
	max, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidPriceRange, err)
	}
	if min > max {
		return 0, 0, fmt.Errorf("%w: min is greater than max", ErrInvalidPriceRange)
	}

	return min, max, nil
}

// Response модели

// PortDTO порт маршрута
type PortDTO struct {
	Name          string `json:"name"`
	Country       string `json:"country"`
	ArrivalTime   string `json:"arrivalTime"`
	DepartureTime string `json:"departureTime"`
}

// PriceDTO минимальная цена каюты
type PriceDTO struct {
	From     int64  `json:"from"`
	Currency string `json:"currency"`
}

// CruiseResponse круиз каталога
type CruiseResponse struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Duration     int                 `json:"duration"`
	Ship         string              `json:"ship"`
	Ports        []PortDTO           `json:"ports"`
	Price        map[string]PriceDTO `json:"price"`
	Inclusions   []string            `json:"inclusions"`
	Highlights   []string            `json:"highlights"`
	SailingDates []string            `json:"sailingDates"`
}

// CruiseListResponse список круизов
type CruiseListResponse struct {
	Count   int              `json:"count"`
	Cruises []CruiseResponse `json:"cruises"`
}

// SearchCruisesResponse результат поиска вместе с критериями запроса
type SearchCruisesResponse struct {
	SearchCriteria SearchCruisesRequest `json:"searchCriteria"`
	Count          int                  `json:"count"`
	Cruises        []CruiseResponse     `json:"cruises"`
}

// FromDomainCruise конвертирует domain модель в DTO
func FromDomainCruise(c *domain.Cruise) *CruiseResponse {
	if c == nil {
		return nil
	}

	ports := make([]PortDTO, len(c.Ports))
	for i, p := range c.Ports {
		ports[i] = PortDTO{
			Name:          p.Name,
			Country:       p.Country,
			ArrivalTime:   p.ArrivalTime,
			DepartureTime: p.DepartureTime,
		}
	}

	price := make(map[string]PriceDTO, len(c.Prices))
	for cabin, from := range c.Prices {
		price[cabin] = PriceDTO{From: from, Currency: c.Currency}
	}

	return &CruiseResponse{
		ID:           c.ID,
		Name:         c.Name,
		Duration:     c.Duration,
		Ship:         c.Ship,
		Ports:        ports,
		Price:        price,
		Inclusions:   c.Inclusions,
		Highlights:   c.Highlights,
		SailingDates: c.SailingDates,
	}
}

// FromDomainCruiseList конвертирует список круизов в DTO
func FromDomainCruiseList(cruises []*domain.Cruise) *CruiseListResponse {
	resp := &CruiseListResponse{
		Count:   len(cruises),
		Cruises: make([]CruiseResponse, 0, len(cruises)),
	}

	for _, c := range cruises {
		if cruiseResp := FromDomainCruise(c); cruiseResp != nil {
			resp.Cruises = append(resp.Cruises, *cruiseResp)
		}
	}

	return resp
}
