package get_availability

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса доступности
type Request struct {
	VehicleType domain.VehicleType // Тип транспорта
}

// LevelAvailability счётчики доступности одного уровня
type LevelAvailability struct {
	LevelNumber int // Номер уровня
	Available   int // Свободные подходящие места
	Total       int // Все подходящие места
}

// Response модель ответа со счётчиками доступности.
// Снимок на момент запроса: следующий въезд может изменить значения.
type Response struct {
	VehicleType string              // Тип транспорта
	Available   int                 // Свободные подходящие места по всей парковке
	Total       int                 // Все подходящие места по всей парковке
	PerLevel    []LevelAvailability // Разбивка по уровням
}
