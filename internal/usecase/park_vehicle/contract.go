package park_vehicle

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/strategy"
)

// SpotPool интерфейс пула парковочных мест
type SpotPool interface {
	strategy.SpotFinder
	SupportsVehicle(vt domain.VehicleType) bool
	MarkOccupied(spotID int64) error
	MarkFree(spotID int64) error
}

// TicketRepository интерфейс реестра талонов
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error)
	FindOpenByPlate(ctx context.Context, licensePlate string) (*domain.Ticket, error)
}

// AssignmentStrategy интерфейс стратегии выбора места
type AssignmentStrategy interface {
	Assign(lot strategy.SpotFinder, vt domain.VehicleType) (*domain.Spot, bool)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
