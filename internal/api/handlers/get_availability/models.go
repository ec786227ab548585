package get_availability

import (
	getAvailability "github.com/m04kA/SMC-ParkingService/internal/usecase/get_availability"
)

// LevelAvailabilityResponse счётчики одного уровня
type LevelAvailabilityResponse struct {
	LevelNumber int `json:"levelNumber"`
	Available   int `json:"available"`
	Total       int `json:"total"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VehicleType string                      `json:"vehicleType"`
	Available   int                         `json:"available"`
	Total       int                         `json:"total"`
	PerLevel    []LevelAvailabilityResponse `json:"perLevel"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	perLevel := make([]LevelAvailabilityResponse, 0, len(resp.PerLevel))
	for _, la := range resp.PerLevel {
		perLevel = append(perLevel, LevelAvailabilityResponse{
			LevelNumber: la.LevelNumber,
			Available:   la.Available,
			Total:       la.Total,
		})
	}

	return &AvailabilityResponse{
		VehicleType: resp.VehicleType,
		Available:   resp.Available,
		Total:       resp.Total,
		PerLevel:    perLevel,
	}
}
