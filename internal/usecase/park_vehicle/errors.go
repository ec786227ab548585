package park_vehicle

import "errors"

var (
	// ErrLotFull возвращается, когда нет свободного подходящего места
	ErrLotFull = errors.New("park_vehicle: no available spot for vehicle type")

	// ErrVehicleTypeNotSupported возвращается, когда тип транспорта не
	// совместим ни с одним местом парковки (повторные попытки бесполезны)
	ErrVehicleTypeNotSupported = errors.New("park_vehicle: vehicle type is not supported by this lot")

	// ErrVehicleAlreadyParked возвращается, когда по госномеру уже есть открытый талон
	ErrVehicleAlreadyParked = errors.New("park_vehicle: vehicle already has an open ticket")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("park_vehicle: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("park_vehicle: internal error")
)
