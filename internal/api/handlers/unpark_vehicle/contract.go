package unpark_vehicle

import (
	"context"

	unparkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/unpark_vehicle"
)

type UnparkVehicleUseCase interface {
	Execute(ctx context.Context, req *unparkVehicle.Request) (*unparkVehicle.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
