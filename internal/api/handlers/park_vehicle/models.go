package park_vehicle

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	parkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/park_vehicle"
)

// ParkVehicleRequest HTTP request model
type ParkVehicleRequest struct {
	LicensePlate string  `json:"licensePlate"`
	VehicleType  string  `json:"vehicleType"`
	Notes        *string `json:"notes,omitempty"`
}

// TicketResponse HTTP response model
type TicketResponse struct {
	TicketID     string  `json:"ticketId"`
	LicensePlate string  `json:"licensePlate"`
	VehicleType  string  `json:"vehicleType"`
	SpotID       int64   `json:"spotId"`
	LevelNumber  int     `json:"levelNumber"`
	SpotType     string  `json:"spotType"`
	Status       string  `json:"status"`
	IssuedAt     string  `json:"issuedAt"`
	Notes        *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ParkVehicleRequest) ToUseCaseRequest() *parkVehicle.Request {
	return &parkVehicle.Request{
		LicensePlate: r.LicensePlate,
		VehicleType:  domain.VehicleType(r.VehicleType),
		Notes:        r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *parkVehicle.Response) *TicketResponse {
	return &TicketResponse{
		TicketID:     resp.TicketID,
		LicensePlate: resp.LicensePlate,
		VehicleType:  resp.VehicleType,
		SpotID:       resp.SpotID,
		LevelNumber:  resp.LevelNumber,
		SpotType:     resp.SpotType,
		Status:       resp.Status,
		IssuedAt:     resp.IssuedAt.Format(time.RFC3339),
		Notes:        resp.Notes,
	}
}
