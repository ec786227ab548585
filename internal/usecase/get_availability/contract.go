package get_availability

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotPool интерфейс пула парковочных мест (только чтение)
type SpotPool interface {
	SupportsVehicle(vt domain.VehicleType) bool
	CountAvailable(vt domain.VehicleType) int
	CountTotal(vt domain.VehicleType) int
	AvailabilityByLevel(vt domain.VehicleType) []domain.LevelAvailability
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
