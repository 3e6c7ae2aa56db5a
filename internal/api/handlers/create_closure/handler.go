package create_closure

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/closures"
	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные закрытия"
	msgOverlap            = "диапазон дат пересекается с существующим закрытием"
)

type Handler struct {
	service ClosureService
	logger  Logger
}

func NewHandler(service ClosureService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, closures.ErrClosureOverlap):
			h.logger.Warn("POST /closures - Closure overlap: from=%s to=%s", req.StartDate, req.EndDate)
			handlers.RespondError(w, http.StatusConflict, msgOverlap)

		case errors.Is(err, closures.ErrInvalidInput):
			h.logger.Warn("POST /closures - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /closures - Failed to create closure: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /closures - Closure created successfully: closure_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
