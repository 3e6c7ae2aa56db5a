package delete_closure

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/closures"
)

const (
	msgInvalidClosureID = "некорректный ID закрытия"
	msgNotFound         = "закрытие не найдено"
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

// Handle DELETE /api/v1/closures/{closureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	closureID, err := strconv.ParseInt(vars["closureId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /closures/{id} - Invalid closure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClosureID)
		return
	}

	if err := h.service.Delete(r.Context(), closureID); err != nil {
		switch {
		case errors.Is(err, closures.ErrClosureNotFound):
			h.logger.Warn("DELETE /closures/{id} - Closure not found: closure_id=%d", closureID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /closures/{id} - Failed to delete closure: closure_id=%d, error=%v", closureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /closures/{id} - Closure deleted successfully: closure_id=%d", closureID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
