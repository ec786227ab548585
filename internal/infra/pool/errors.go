package pool

import "errors"

var (
	// ErrEmptyLot возвращается при попытке собрать парковку без мест
	ErrEmptyLot = errors.New("pool: lot has no spots")

	// ErrDuplicateSpotID возвращается при дублировании идентификатора места в конфигурации
	ErrDuplicateSpotID = errors.New("pool: duplicate spot id")

	// ErrSpotNotFound возвращается, когда место с указанным идентификатором не существует
	ErrSpotNotFound = errors.New("pool: spot not found")

	// ErrSpotOccupied возвращается при попытке занять уже занятое место
	ErrSpotOccupied = errors.New("pool: spot is already occupied")

	// ErrSpotNotOccupied возвращается при попытке освободить свободное место
	ErrSpotNotOccupied = errors.New("pool: spot is not occupied")
)
