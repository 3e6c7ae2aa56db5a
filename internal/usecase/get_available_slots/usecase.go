package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salonconfig"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// dayOffReason причина, с которой возвращается пустой список слотов
// в конфигурационный выходной день
const dayOffReason = "Day off"

// UseCase use case для получения доступных слотов записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	configRepo      ConfigRepository
	closureRepo     ClosureRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	configRepo ConfigRepository,
	closureRepo ClosureRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		configRepo:      configRepo,
		closureRepo:     closureRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Чистая функция своих входов: повторный вызов с теми же данными
// возвращает тот же результат. Блокировки не нужны - генерация только
// читает.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем конфигурацию салона
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon config not found")
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get salon config: %v", err)
		return nil, fmt.Errorf("%w: failed to get salon config: %v", ErrInternal, err)
	}

	// 4. Конфигурационный выходной - слоты не генерируются
	if cfg.IsDayOff(req.Date.Weekday()) {
		uc.logger.Info("GetAvailableSlots: %s is a day off", req.Date.Format(domain.DateFormat))
		return uc.closedResponse(req, service, dayOffReason), nil
	}

	// 5. Определяем диспозицию закрытий на день
	closures, err := uc.closureRepo.GetCovering(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get closures: %v", err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	disposition := domain.ResolveClosures(req.Date, closures)

	// 6. Полное закрытие - пустые списки и причина для клиента
	if disposition.IsFullyClosed() {
		uc.logger.Info("GetAvailableSlots: %s is fully closed: %s",
			req.Date.Format(domain.DateFormat), disposition.Reason)
		return uc.closedResponse(req, service, disposition.Reason), nil
	}

	// 7. Получаем занимающие таймлайн записи на дату
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date, true)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Генерируем кандидатов по обоим рабочим окнам
	allSlots, err := generateDaySlots(req.Date, service.DurationMinutes, cfg, appointments, disposition)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	availableSlots := make([]time.Time, 0, len(allSlots))
	for _, slot := range allSlots {
		if slot.Available {
			availableSlots = append(availableSlots, slot.StartTime)
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for service=%d, date=%s",
		len(allSlots), len(availableSlots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		AllSlots:        allSlots,
		AvailableSlots:  availableSlots,
	}, nil
}

// closedResponse формирует ответ полностью закрытого дня:
// пустые списки слотов и причина закрытия
func (uc *UseCase) closedResponse(req *Request, service *domain.Service, reason string) *Response {
	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		AllSlots:        []Slot{},
		AvailableSlots:  []time.Time{},
		ClosureReason:   ptr.Ptr(reason),
	}
}
