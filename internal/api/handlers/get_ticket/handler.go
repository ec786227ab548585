package get_ticket

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets"
)

const (
	msgInvalidTicketID = "некорректный идентификатор талона"
	msgNotFound        = "талон не найден"
)

type Handler struct {
	service TicketService
	logger  Logger
}

func NewHandler(service TicketService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tickets/{ticketId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем ticketId из URL
	vars := mux.Vars(r)
	ticketID := vars["ticketId"]

	ticket, err := h.service.GetByID(r.Context(), ticketID)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrInvalidInput):
			h.logger.Warn("GET /tickets/{id} - Invalid ticket ID")
			handlers.RespondBadRequest(w, msgInvalidTicketID)

		case errors.Is(err, tickets.ErrTicketNotFound):
			h.logger.Warn("GET /tickets/{id} - Ticket not found: ticket=%s", ticketID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /tickets/{id} - Failed to get ticket: ticket=%s, error=%v", ticketID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tickets/{id} - Ticket retrieved: ticket=%s", ticketID)
	handlers.RespondJSON(w, http.StatusOK, ticket)
}
