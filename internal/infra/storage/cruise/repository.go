package cruise

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// Repository каталог круизов только для чтения
type Repository struct {
	cruises []domain.Cruise
}

// NewRepository создает каталог со встроенными круизами
func NewRepository() *Repository {
	return NewRepositoryWithData(defaultCruises())
}

// NewRepositoryWithData создает каталог с переданными круизами
func NewRepositoryWithData(cruises []domain.Cruise) *Repository {
	return &Repository{cruises: cruises}
}

// GetByID получает круиз по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Cruise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, ok := lo.Find(r.cruises, func(c domain.Cruise) bool {
		return c.ID == id
	})
	if !ok {
		return nil, ErrCruiseNotFound
	}

	return c.Clone(), nil
}

// List получает круизы, подходящие под фильтр, в порядке каталога
func (r *Repository) List(ctx context.Context, filter domain.CruisesFilter) ([]*domain.Cruise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := lo.Filter(r.cruises, func(c domain.Cruise, _ int) bool {
		return matches(&c, filter)
	})

	return lo.Map(matched, func(c domain.Cruise, _ int) *domain.Cruise {
		return c.Clone()
	}), nil
}

func matches(c *domain.Cruise, filter domain.CruisesFilter) bool {
	if filter.Duration != nil && c.Duration != *filter.Duration {
		return false
	}

	// Диапазон цен сравнивается с минимальной ценой (каюта interior)
	if filter.MinPrice != nil && c.FromPrice() < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && c.FromPrice() > *filter.MaxPrice {
		return false
	}

	if filter.Destination != nil {
		destination := strings.ToLower(*filter.Destination)
		if !lo.ContainsBy(c.Ports, func(p domain.Port) bool {
			return strings.Contains(strings.ToLower(p.Name), destination)
		}) {
			return false
		}
	}

	// Даты в формате YYYY-MM-DD сравниваются как строки
	if filter.DepartureFrom != nil && !lo.ContainsBy(c.SailingDates, func(date string) bool {
		return date >= *filter.DepartureFrom
	}) {
		return false
	}

	if filter.Departure != nil {
		return lo.ContainsBy(c.SailingDates, func(date string) bool {
			return strings.HasPrefix(date, *filter.Departure)
		})
	}

	return true
}
