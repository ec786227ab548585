package get_tickets

import (
	"net/url"

	"github.com/m04kA/SMC-ParkingService/internal/service/tickets/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(query url.Values) *models.ListTicketsRequest {
	req := &models.ListTicketsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if plate := query.Get("licensePlate"); plate != "" {
		req.LicensePlate = &plate
	}

	return req
}
