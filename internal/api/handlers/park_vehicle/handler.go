package park_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	parkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/park_vehicle"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные запроса"
	msgLotFull              = "нет свободных мест для данного типа транспорта"
	msgVehicleNotSupported  = "данный тип транспорта не обслуживается парковкой"
	msgVehicleAlreadyParked = "транспорт с этим госномером уже на парковке"
	msgMissingTerminalID    = "отсутствует идентификатор терминала"
)

type Handler struct {
	useCase ParkVehicleUseCase
	logger  Logger
}

func NewHandler(useCase ParkVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tickets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем terminalID из контекста (через middleware Auth)
	terminalID, ok := middleware.GetTerminalID(r.Context())
	if !ok {
		h.logger.Warn("POST /tickets - Missing terminal ID")
		handlers.RespondUnauthorized(w, msgMissingTerminalID)
		return
	}

	// Декодируем body
	var req ParkVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tickets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Выполняем въезд
	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, parkVehicle.ErrInvalidInput):
			h.logger.Warn("POST /tickets - Invalid input: terminal=%s, error=%v", terminalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, parkVehicle.ErrVehicleTypeNotSupported):
			h.logger.Warn("POST /tickets - Unsupported vehicle type: terminal=%s, type=%s",
				terminalID, req.VehicleType)
			handlers.RespondUnprocessableEntity(w, msgVehicleNotSupported)

		case errors.Is(err, parkVehicle.ErrLotFull):
			h.logger.Warn("POST /tickets - Lot is full: terminal=%s, type=%s", terminalID, req.VehicleType)
			handlers.RespondConflict(w, msgLotFull)

		case errors.Is(err, parkVehicle.ErrVehicleAlreadyParked):
			h.logger.Warn("POST /tickets - Vehicle already parked: terminal=%s, plate=%s",
				terminalID, req.LicensePlate)
			handlers.RespondConflict(w, msgVehicleAlreadyParked)

		default:
			h.logger.Error("POST /tickets - Failed to park vehicle: terminal=%s, error=%v", terminalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tickets - Ticket issued: terminal=%s, ticket=%s, spot=%d",
		terminalID, resp.TicketID, resp.SpotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
