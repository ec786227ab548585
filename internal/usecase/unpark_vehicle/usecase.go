package unpark_vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	ticketRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-ParkingService/internal/strategy"
)

// UseCase use case выезда с парковки
type UseCase struct {
	pool         SpotPool
	ticketRepo   TicketRepository
	feeCalc      FeeCalculator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pool SpotPool,
	ticketRepo TicketRepository,
	feeCalc FeeCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		pool:         pool,
		ticketRepo:   ticketRepo,
		feeCalc:      feeCalc,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case выезда: считает стоимость стоянки, закрывает
// талон и освобождает место. Вся последовательность выполняется в
// сериализуемой транзакции; при любой ошибке состояние пула и реестра
// остаётся нетронутым.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UnparkVehicle: ticket=%s", req.TicketID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UnparkVehicle: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Ticket

	// 3. Выполняем операции с реестром и пулом в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Находим талон
		t, err := uc.ticketRepo.GetByID(txCtx, req.TicketID)
		if err != nil {
			if errors.Is(err, ticketRepo.ErrTicketNotFound) {
				uc.logger.Warn("UnparkVehicle: ticket id=%s not found", req.TicketID)
				return ErrTicketNotFound
			}
			uc.logger.Error("UnparkVehicle: failed to get ticket id=%s: %v", req.TicketID, err)
			return fmt.Errorf("%w: failed to get ticket: %v", ErrInternal, err)
		}

		// 3.2. Повторное закрытие отклоняем до каких-либо мутаций
		if t.IsClosed() {
			uc.logger.Warn("UnparkVehicle: ticket id=%s is already closed", req.TicketID)
			return ErrTicketAlreadyClosed
		}

		// 3.3. Считаем стоимость стоянки
		amount, err := uc.feeCalc.Calculate(strategy.FeeContext{
			IssuedAt: t.IssuedAt,
			ClosedAt: now,
		})
		if err != nil {
			uc.logger.Error("UnparkVehicle: fee calculation failed for ticket id=%s: %v", req.TicketID, err)
			return fmt.Errorf("%w: fee calculation failed: %v", ErrInternal, err)
		}

		// 3.4. Закрываем талон
		closed, err := uc.ticketRepo.Close(txCtx, req.TicketID, now, amount)
		if err != nil {
			uc.logger.Error("UnparkVehicle: failed to close ticket id=%s: %v", req.TicketID, err)
			return fmt.Errorf("%w: failed to close ticket: %v", ErrInternal, err)
		}

		// 3.5. Освобождаем место
		if err := uc.pool.MarkFree(closed.SpotID); err != nil {
			uc.logger.Error("UnparkVehicle: failed to free spot id=%d: %v", closed.SpotID, err)
			return fmt.Errorf("%w: failed to free spot: %v", ErrInternal, err)
		}

		result = closed
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UnparkVehicle: closed ticket id=%s, spot=%d, amount=%s",
		result.ID, result.SpotID, result.AmountDue)

	// Конвертируем в response
	return &Response{
		TicketID:     result.ID,
		LicensePlate: result.LicensePlate,
		SpotID:       result.SpotID,
		LevelNumber:  result.LevelNumber,
		AmountDue:    *result.AmountDue,
		IssuedAt:     result.IssuedAt,
		ClosedAt:     *result.ClosedAt,
	}, nil
}
