package get_availability

import (
	"context"
)

// UseCase use case получения доступности парковки
type UseCase struct {
	pool      SpotPool
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pool SpotPool,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		pool:      pool,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute возвращает счётчики свободных мест для типа транспорта.
// Чтение выполняется под разделяемой блокировкой: запрос не наблюдает
// промежуточное состояние въезда или выезда, но следующая операция может
// изменить счётчики - гарантия только на момент снимка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	var resp *Response

	// 2. Снимаем счётчики под разделяемой блокировкой
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if !uc.pool.SupportsVehicle(req.VehicleType) {
			uc.logger.Warn("GetAvailability: vehicle type=%s is not supported", req.VehicleType)
			return ErrVehicleTypeNotSupported
		}

		perLevel := uc.pool.AvailabilityByLevel(req.VehicleType)
		levels := make([]LevelAvailability, 0, len(perLevel))
		for _, la := range perLevel {
			levels = append(levels, LevelAvailability{
				LevelNumber: la.LevelNumber,
				Available:   la.Available,
				Total:       la.Total,
			})
		}

		resp = &Response{
			VehicleType: string(req.VehicleType),
			Available:   uc.pool.CountAvailable(req.VehicleType),
			Total:       uc.pool.CountTotal(req.VehicleType),
			PerLevel:    levels,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailability: type=%s, available=%d/%d", resp.VehicleType, resp.Available, resp.Total)
	return resp, nil
}
