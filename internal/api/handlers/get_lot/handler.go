package get_lot

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	service LotService
	logger  Logger
}

func NewHandler(service LotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	layout, err := h.service.Layout(r.Context())
	if err != nil {
		h.logger.Error("GET /lot - Failed to get layout: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lot - Layout retrieved: levels=%d", len(layout.Levels))
	handlers.RespondJSON(w, http.StatusOK, layout)
}
