package get_availability

import "errors"

var (
	// ErrVehicleTypeNotSupported возвращается, когда тип транспорта не
	// совместим ни с одним местом парковки
	ErrVehicleTypeNotSupported = errors.New("get_availability: vehicle type is not supported by this lot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")
)
