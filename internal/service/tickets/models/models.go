package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе талона
	ErrInvalidStatus = errors.New("invalid ticket status")
)

// Request модели

// ListTicketsRequest запрос на выборку талонов
type ListTicketsRequest struct {
	Status       *string `json:"status,omitempty"`       // Фильтр по статусу (опционально)
	LicensePlate *string `json:"licensePlate,omitempty"` // Фильтр по госномеру (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListTicketsRequest) ToDomainFilter() (domain.TicketFilter, error) {
	filter := domain.TicketFilter{
		LicensePlate: r.LicensePlate,
	}

	if r.Status != nil {
		status, err := ToDomainTicketStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainTicketStatus конвертирует строковый статус в domain.TicketStatus
func ToDomainTicketStatus(s string) (domain.TicketStatus, error) {
	switch domain.TicketStatus(s) {
	case domain.StatusOpen:
		return domain.StatusOpen, nil
	case domain.StatusClosed:
		return domain.StatusClosed, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// TicketResponse ответ с данными талона
type TicketResponse struct {
	ID           string  `json:"id"`
	LicensePlate string  `json:"licensePlate"`
	VehicleType  string  `json:"vehicleType"`
	SpotID       int64   `json:"spotId"`
	LevelNumber  int     `json:"levelNumber"`
	SpotType     string  `json:"spotType"`
	Status       string  `json:"status"`
	IssuedAt     string  `json:"issuedAt"`            // ISO 8601 format
	ClosedAt     *string `json:"closedAt,omitempty"`  // ISO 8601 format
	AmountDue    *string `json:"amountDue,omitempty"` // "20.00"
	Notes        *string `json:"notes,omitempty"`
}

// TicketListResponse ответ со списком талонов
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}

// Методы конвертации

// FromDomainTicket конвертирует domain модель в DTO
func FromDomainTicket(t *domain.Ticket) *TicketResponse {
	if t == nil {
		return nil
	}

	resp := &TicketResponse{
		ID:           t.ID,
		LicensePlate: t.LicensePlate,
		VehicleType:  string(t.VehicleType),
		SpotID:       t.SpotID,
		LevelNumber:  t.LevelNumber,
		SpotType:     string(t.SpotType),
		Status:       string(t.Status),
		IssuedAt:     t.IssuedAt.Format(time.RFC3339),
		Notes:        t.Notes,
	}

	if t.ClosedAt != nil {
		closedAt := t.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &closedAt
	}
	if t.AmountDue != nil {
		amount := t.AmountDue.String()
		resp.AmountDue = &amount
	}

	return resp
}

// FromDomainTicketList конвертирует список domain моделей в DTO
func FromDomainTicketList(list []*domain.Ticket) *TicketListResponse {
	tickets := make([]TicketResponse, 0, len(list))
	for _, t := range list {
		tickets = append(tickets, *FromDomainTicket(t))
	}
	return &TicketListResponse{Tickets: tickets}
}
