package create_salon_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/salonconfig"
	"github.com/m04kA/SMC-SalonService/internal/service/salonconfig/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные конфигурации"
	msgAlreadyExists      = "конфигурация салона уже создана"
)

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

// Handle POST /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrConfigAlreadyExists):
			h.logger.Warn("POST /config - Salon config already exists")
			handlers.RespondError(w, http.StatusConflict, msgAlreadyExists)

		case errors.Is(err, salonconfig.ErrInvalidInput):
			h.logger.Warn("POST /config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /config - Failed to create config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /config - Config created successfully: config_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
