package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ParkingService/internal/usecase/get_availability"
)

const (
	msgMissingVehicleType  = "не указан тип транспорта"
	msgVehicleNotSupported = "данный тип транспорта не обслуживается парковкой"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?vehicleType=car
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleType := r.URL.Query().Get("vehicleType")
	if vehicleType == "" {
		h.logger.Warn("GET /availability - Missing vehicleType query parameter")
		handlers.RespondBadRequest(w, msgMissingVehicleType)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		VehicleType: domain.VehicleType(vehicleType),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingVehicleType)

		case errors.Is(err, getAvailability.ErrVehicleTypeNotSupported):
			h.logger.Warn("GET /availability - Unsupported vehicle type: %s", vehicleType)
			handlers.RespondUnprocessableEntity(w, msgVehicleNotSupported)

		default:
			h.logger.Error("GET /availability - Failed to get availability: type=%s, error=%v",
				vehicleType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability fetched: type=%s, available=%d/%d",
		vehicleType, resp.Available, resp.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
