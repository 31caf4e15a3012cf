package get_cruise_availability

import (
	"context"
	"errors"
	"fmt"

	cruiseRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/cruise"
)

// UseCase use case для получения доступности круиза по датам
type UseCase struct {
	cruiseRepo CruiseRepository
	random     RandomSource
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cruiseRepo CruiseRepository, logger Logger) *UseCase {
	return &UseCase{
		cruiseRepo: cruiseRepo,
		random:     globalRandom{},
		logger:     logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCruiseAvailability: cruise=%d", req.CruiseID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCruiseAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем круиз
	cruise, err := uc.cruiseRepo.GetByID(ctx, req.CruiseID)
	if err != nil {
		if errors.Is(err, cruiseRepo.ErrCruiseNotFound) {
			uc.logger.Warn("GetCruiseAvailability: cruise id=%d not found", req.CruiseID)
			return nil, ErrCruiseNotFound
		}
		uc.logger.Error("GetCruiseAvailability: failed to get cruise id=%d: %v", req.CruiseID, err)
		return nil, fmt.Errorf("%w: failed to get cruise: %v", ErrInternal, err)
	}

	// 3. Строим доступность по датам отправления
	sailings := buildAvailability(cruise, uc.random)

	uc.logger.Info("GetCruiseAvailability: built availability for %d sailings of cruise id=%d",
		len(sailings), req.CruiseID)

	return &Response{
		CruiseID: cruise.ID,
		Currency: cruise.Currency,
		Sailings: sailings,
	}, nil
}
