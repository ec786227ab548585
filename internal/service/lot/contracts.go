package lot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotPool интерфейс пула парковочных мест (только чтение)
type SpotPool interface {
	Name() string
	Snapshot() []*domain.Level
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
