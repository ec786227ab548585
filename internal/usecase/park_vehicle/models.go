package park_vehicle

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на въезд
type Request struct {
	LicensePlate string             // Госномер транспорта
	VehicleType  domain.VehicleType // Тип транспорта
	Notes        *string            // Дополнительные заметки (опционально)
}

// Response модель ответа с выданным талоном
type Response struct {
	TicketID     string    // Идентификатор талона
	LicensePlate string    // Госномер транспорта
	VehicleType  string    // Тип транспорта
	SpotID       int64     // Идентификатор выделенного места
	LevelNumber  int       // Номер уровня
	SpotType     string    // Тип места
	Status       string    // Статус талона
	IssuedAt     time.Time // Время въезда
	Notes        *string   // Заметки
}
