package get_tickets

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/tickets/models"
)

type TicketService interface {
	List(ctx context.Context, req *models.ListTicketsRequest) (*models.TicketListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
