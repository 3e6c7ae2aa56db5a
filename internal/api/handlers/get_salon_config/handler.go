package get_salon_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/salonconfig"
)

const msgNotFound = "конфигурация салона не создана"

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrConfigNotFound):
			h.logger.Warn("GET /config - Salon config not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /config - Failed to get config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /config - Config retrieved successfully: config_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
