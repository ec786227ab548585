package get_tickets

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets"
)

const (
	msgInvalidStatus     = "некорректный статус талона"
	msgMissingTerminalID = "отсутствует идентификатор терминала"
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

// Handle GET /api/v1/tickets?status=open&licensePlate=A001AA
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем terminalID из контекста (через middleware Auth)
	terminalID, ok := middleware.GetTerminalID(r.Context())
	if !ok {
		h.logger.Warn("GET /tickets - Missing terminal ID")
		handlers.RespondUnauthorized(w, msgMissingTerminalID)
		return
	}

	req := ToServiceRequest(r.URL.Query())

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrInvalidInput):
			h.logger.Warn("GET /tickets - Invalid status filter: terminal=%s", terminalID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /tickets - Failed to list tickets: terminal=%s, error=%v", terminalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tickets - Tickets listed: terminal=%s, count=%d", terminalID, len(list.Tickets))
	handlers.RespondJSON(w, http.StatusOK, list)
}
