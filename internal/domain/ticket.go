package domain

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// TicketStatus represents the lifecycle state of a parking ticket
type TicketStatus string

const (
	StatusOpen   TicketStatus = "open"
	StatusClosed TicketStatus = "closed"
)

// Ticket represents a parking session: issued at an entry terminal when a
// spot is allocated, closed at an exit terminal with the amount due.
// Closed tickets are never deleted and remain queryable.
type Ticket struct {
	ID           string
	LicensePlate string
	VehicleType  VehicleType
	SpotID       int64
	LevelNumber  int
	SpotType     SpotType
	Status       TicketStatus

	IssuedAt  time.Time
	ClosedAt  *time.Time
	AmountDue *types.Money

	Notes *string
}

// IsOpen returns true if the ticket has not been closed yet
func (t *Ticket) IsOpen() bool {
	return t.Status == StatusOpen
}

// IsClosed returns true if the ticket has been closed
func (t *Ticket) IsClosed() bool {
	return t.Status == StatusClosed
}

// TicketFilter фильтр для выборки талонов из реестра
type TicketFilter struct {
	Status       *TicketStatus // Фильтр по статусу (опционально)
	LicensePlate *string       // Фильтр по госномеру (опционально)
	SpotID       *int64        // Фильтр по месту (опционально)
}
