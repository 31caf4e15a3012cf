package catalog

import (
	"context"
	"errors"
	"fmt"

	cruiseRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/cruise"
	"github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog/models"
)

// Service сервис каталога круизов
type Service struct {
	cruiseRepo CruiseRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(cruiseRepo CruiseRepository, logger Logger) *Service {
	return &Service{
		cruiseRepo: cruiseRepo,
		logger:     logger,
	}
}

// GetCruise получает круиз по ID
func (s *Service) GetCruise(ctx context.Context, id int64) (*models.CruiseResponse, error) {
	s.logger.Info("GetCruise: fetching cruise id=%d", id)

	cruise, err := s.cruiseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, cruiseRepo.ErrCruiseNotFound) {
			s.logger.Warn("GetCruise: cruise id=%d not found", id)
			return nil, ErrCruiseNotFound
		}
		s.logger.Error("GetCruise: repository error for cruise id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetCruise - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCruise(cruise), nil
}

// ListCruises получает круизы с фильтрацией по длительности, цене и дате отправления
func (s *Service) ListCruises(ctx context.Context, req *models.ListCruisesRequest) (*models.CruiseListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListCruises: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	cruises, err := s.cruiseRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListCruises: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCruises - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCruises: successfully fetched %d cruises", len(cruises))
	return models.FromDomainCruiseList(cruises), nil
}

// Search ищет круизы по порту назначения, длительности и дате отправления
func (s *Service) Search(ctx context.Context, req *models.SearchCruisesRequest) (*models.SearchCruisesResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Search: invalid criteria: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	cruises, err := s.cruiseRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	list := models.FromDomainCruiseList(cruises)

	s.logger.Info("Search: found %d cruises", list.Count)
	return &models.SearchCruisesResponse{
		SearchCriteria: *req,
		Count:          list.Count,
		Cruises:        list.Cruises,
	}, nil
}
