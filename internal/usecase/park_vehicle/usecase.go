package park_vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	ticketRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/ticket"
)

// UseCase use case въезда на парковку
type UseCase struct {
	pool         SpotPool
	ticketRepo   TicketRepository
	assignment   AssignmentStrategy
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pool SpotPool,
	ticketRepo TicketRepository,
	assignment AssignmentStrategy,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		pool:         pool,
		ticketRepo:   ticketRepo,
		assignment:   assignment,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case въезда: подбирает место по стратегии, помечает
// его занятым и выдаёт талон. Вся последовательность проверок и мутаций
// выполняется в сериализуемой транзакции, чтобы два въезжающих не получили
// одно место.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ParkVehicle: plate=%s, type=%s", req.LicensePlate, req.VehicleType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ParkVehicle: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Ticket

	// 3. Выполняем операции с пулом и реестром в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем, что тип транспорта вообще обслуживается парковкой
		if !uc.pool.SupportsVehicle(req.VehicleType) {
			uc.logger.Warn("ParkVehicle: vehicle type=%s is not supported", req.VehicleType)
			return ErrVehicleTypeNotSupported
		}

		// 3.2. Проверяем, что транспорт ещё не на парковке
		existing, err := uc.ticketRepo.FindOpenByPlate(txCtx, req.LicensePlate)
		if err != nil && !errors.Is(err, ticketRepo.ErrTicketNotFound) {
			uc.logger.Error("ParkVehicle: failed to check open ticket for plate=%s: %v", req.LicensePlate, err)
			return fmt.Errorf("%w: failed to check open ticket: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("ParkVehicle: plate=%s already has open ticket id=%s", req.LicensePlate, existing.ID)
			return ErrVehicleAlreadyParked
		}

		// 3.3. Подбираем место по стратегии
		spot, ok := uc.assignment.Assign(uc.pool, req.VehicleType)
		if !ok {
			uc.logger.Warn("ParkVehicle: no available spot for type=%s", req.VehicleType)
			return ErrLotFull
		}

		// 3.4. Помечаем место занятым
		if err := uc.pool.MarkOccupied(spot.ID); err != nil {
			uc.logger.Error("ParkVehicle: failed to mark spot id=%d occupied: %v", spot.ID, err)
			return fmt.Errorf("%w: failed to mark spot occupied: %v", ErrInternal, err)
		}

		// 3.5. Создаем талон
		t := &domain.Ticket{
			ID:           uuid.NewString(),
			LicensePlate: req.LicensePlate,
			VehicleType:  req.VehicleType,
			SpotID:       spot.ID,
			LevelNumber:  spot.LevelNumber,
			SpotType:     spot.Type,
			Status:       domain.StatusOpen,
			IssuedAt:     now,
			Notes:        req.Notes,
		}

		created, err := uc.ticketRepo.Create(txCtx, t)
		if err != nil {
			// Возвращаем место в пул, чтобы пул и реестр не разошлись
			if freeErr := uc.pool.MarkFree(spot.ID); freeErr != nil {
				uc.logger.Error("ParkVehicle: failed to free spot id=%d after create error: %v", spot.ID, freeErr)
			}
			uc.logger.Error("ParkVehicle: failed to create ticket: %v", err)
			return fmt.Errorf("%w: failed to create ticket: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ParkVehicle: issued ticket id=%s, plate=%s, spot=%d, level=%d",
		result.ID, result.LicensePlate, result.SpotID, result.LevelNumber)

	// Конвертируем в response
	return &Response{
		TicketID:     result.ID,
		LicensePlate: result.LicensePlate,
		VehicleType:  string(result.VehicleType),
		SpotID:       result.SpotID,
		LevelNumber:  result.LevelNumber,
		SpotType:     string(result.SpotType),
		Status:       string(result.Status),
		IssuedAt:     result.IssuedAt,
		Notes:        result.Notes,
	}, nil
}
