package unpark_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	unparkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/unpark_vehicle"
)

const (
	msgInvalidTicketID     = "некорректный идентификатор талона"
	msgTicketNotFound      = "талон не найден"
	msgTicketAlreadyClosed = "талон уже закрыт"
	msgMissingTerminalID   = "отсутствует идентификатор терминала"
)

type Handler struct {
	useCase UnparkVehicleUseCase
	logger  Logger
}

func NewHandler(useCase UnparkVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tickets/{ticketId}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем terminalID из контекста (через middleware Auth)
	terminalID, ok := middleware.GetTerminalID(r.Context())
	if !ok {
		h.logger.Warn("POST /tickets/{id}/close - Missing terminal ID")
		handlers.RespondUnauthorized(w, msgMissingTerminalID)
		return
	}

	// Извлекаем ticketId из URL
	vars := mux.Vars(r)
	ticketID := vars["ticketId"]

	// Выполняем выезд
	resp, err := h.useCase.Execute(r.Context(), &unparkVehicle.Request{TicketID: ticketID})
	if err != nil {
		switch {
		case errors.Is(err, unparkVehicle.ErrInvalidInput):
			h.logger.Warn("POST /tickets/{id}/close - Invalid ticket ID: terminal=%s", terminalID)
			handlers.RespondBadRequest(w, msgInvalidTicketID)

		case errors.Is(err, unparkVehicle.ErrTicketNotFound):
			h.logger.Warn("POST /tickets/{id}/close - Ticket not found: terminal=%s, ticket=%s",
				terminalID, ticketID)
			handlers.RespondNotFound(w, msgTicketNotFound)

		case errors.Is(err, unparkVehicle.ErrTicketAlreadyClosed):
			h.logger.Warn("POST /tickets/{id}/close - Ticket already closed: terminal=%s, ticket=%s",
				terminalID, ticketID)
			handlers.RespondConflict(w, msgTicketAlreadyClosed)

		default:
			h.logger.Error("POST /tickets/{id}/close - Failed to close ticket: terminal=%s, ticket=%s, error=%v",
				terminalID, ticketID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tickets/{id}/close - Ticket closed: terminal=%s, ticket=%s, amount=%s",
		terminalID, resp.TicketID, resp.AmountDue)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
