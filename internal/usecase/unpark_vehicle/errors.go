package unpark_vehicle

import "errors"

var (
	// ErrTicketNotFound возвращается, когда талон не найден
	ErrTicketNotFound = errors.New("unpark_vehicle: ticket not found")

	// ErrTicketAlreadyClosed возвращается при повторном закрытии талона
	ErrTicketAlreadyClosed = errors.New("unpark_vehicle: ticket is already closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("unpark_vehicle: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("unpark_vehicle: internal error")
)
