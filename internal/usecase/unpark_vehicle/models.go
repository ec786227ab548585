package unpark_vehicle

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса на выезд
type Request struct {
	TicketID string // Идентификатор талона
}

// Response модель ответа с закрытым талоном и суммой к оплате
type Response struct {
	TicketID     string      // Идентификатор талона
	LicensePlate string      // Госномер транспорта
	SpotID       int64       // Освобождённое место
	LevelNumber  int         // Номер уровня
	AmountDue    types.Money // Сумма к оплате
	IssuedAt     time.Time   // Время въезда
	ClosedAt     time.Time   // Время выезда
}
