package unpark_vehicle

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/strategy"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// SpotPool интерфейс пула парковочных мест
type SpotPool interface {
	MarkFree(spotID int64) error
}

// TicketRepository интерфейс реестра талонов
type TicketRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Close(ctx context.Context, id string, closedAt time.Time, amount types.Money) (*domain.Ticket, error)
}

// FeeCalculator интерфейс расчёта стоимости стоянки
type FeeCalculator interface {
	Calculate(fc strategy.FeeContext) (types.Money, error)
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
