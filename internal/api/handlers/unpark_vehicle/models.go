package unpark_vehicle

import (
	"time"

	unparkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/unpark_vehicle"
)

// ClosedTicketResponse HTTP response model
type ClosedTicketResponse struct {
	TicketID     string `json:"ticketId"`
	LicensePlate string `json:"licensePlate"`
	SpotID       int64  `json:"spotId"`
	LevelNumber  int    `json:"levelNumber"`
	AmountDue    string `json:"amountDue"` // "20.00"
	IssuedAt     string `json:"issuedAt"`
	ClosedAt     string `json:"closedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *unparkVehicle.Response) *ClosedTicketResponse {
	return &ClosedTicketResponse{
		TicketID:     resp.TicketID,
		LicensePlate: resp.LicensePlate,
		SpotID:       resp.SpotID,
		LevelNumber:  resp.LevelNumber,
		AmountDue:    resp.AmountDue.String(),
		IssuedAt:     resp.IssuedAt.Format(time.RFC3339),
		ClosedAt:     resp.ClosedAt.Format(time.RFC3339),
	}
}
