package create_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/config"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSlotConflict       = "выбранный временной слот занят"
	msgServiceNotFound    = "услуга не найдена"
	msgConfigNotFound     = "конфигурация салона не создана"
	msgSalonClosed        = "салон закрыт в выбранную дату"
	msgInvalidInput       = "некорректные данные записи"
	msgStatusForbidden    = "создание блокировок доступно только администраторам"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	authCfg config.AuthConfig
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, authCfg config.AuthConfig, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		authCfg: authCfg,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Переопределение статуса доступно только администраторам
	if req.Status != "" && !h.isAdminCaller(r) {
		h.logger.Warn("POST /appointments - Status override by non-admin caller")
		handlers.RespondForbidden(w, msgStatusForbidden)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createAppointment.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /appointments - Slot conflict: service_id=%d, date=%s, start=%s, blocked=%v",
				req.ServiceID, req.Date, req.StartTime, conflictErr.IsBlocked)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:     msgSlotConflict,
				Conflict:  true,
				IsBlocked: conflictErr.IsBlocked,
			})

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrConfigNotFound):
			h.logger.Warn("POST /appointments - Salon config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, createAppointment.ErrSalonClosed):
			h.logger.Warn("POST /appointments - Salon closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service_id=%d, date=%s, error=%v",
				req.ServiceID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, date=%s, start=%s, status=%s",
		result.ID, req.Date, req.StartTime, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// isAdminCaller проверяет заголовок X-User-ID против списка администраторов.
// Маршрут публичный, поэтому проверка выполняется здесь, а не в middleware
func (h *Handler) isAdminCaller(r *http.Request) bool {
	userIDStr := r.Header.Get("X-User-ID")
	if userIDStr == "" {
		return false
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return false
	}
	return h.authCfg.IsAdmin(userID)
}
