package get_lot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/lot/models"
)

type LotService interface {
	Layout(ctx context.Context) (*models.LayoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
