package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salonconfig"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	configRepo      ConfigRepository
	closureRepo     ClosureRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	configRepo ConfigRepository,
	closureRepo ClosureRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		configRepo:      configRepo,
		closureRepo:     closureRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
//
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции со свежим чтением занимающих таймлайн записей (FOR UPDATE):
// два конкурирующих запроса на пересекающиеся интервалы сериализуются,
// и второй получает конфликт. Список слотов, который видел клиент,
// здесь не переиспользуется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%q, service=%d, date=%s, start=%s",
		req.CustomerName, req.ServiceID,
		req.Date.Format(domain.DateFormat),
		req.StartTime.In(domain.SalonLocation).Format(domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем конфигурацию салона
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("CreateAppointment: salon config not found")
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get salon config: %v", err)
		return nil, fmt.Errorf("%w: failed to get salon config: %v", ErrInternal, err)
	}

	// 4. Конфигурационный выходной
	if cfg.IsDayOff(req.Date.Weekday()) {
		uc.logger.Warn("CreateAppointment: %s is a day off", req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	// 5. Вычисляем конец интервала.
	// Интервал фиксируется на момент создания: последующие изменения
	// длительности услуги не пересчитывают существующие записи.
	start := req.StartTime
	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	status := domain.StatusScheduled
	if req.StatusOverride != nil {
		status = *req.StatusOverride
	}

	var result *domain.Appointment

	// 6. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Повторная проверка закрытий на момент коммита: между показом
		// слотов и подтверждением администратор мог закрыть день
		closures, err := uc.closureRepo.GetCovering(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get closures: %v", err)
			return fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
		}

		disposition := domain.ResolveClosures(req.Date, closures)

		if disposition.IsFullyClosed() {
			uc.logger.Warn("CreateAppointment: %s is fully closed: %s",
				req.Date.Format(domain.DateFormat), disposition.Reason)
			return ErrSalonClosed
		}

		if disposition.IsPartiallyClosed() &&
			domain.Overlaps(disposition.WindowStart, disposition.WindowEnd, start, end) {
			uc.logger.Warn("CreateAppointment: interval overlaps closure window [%s, %s)",
				disposition.WindowStart.Format(domain.TimeFormat),
				disposition.WindowEnd.Format(domain.TimeFormat))
			return &ConflictError{IsBlocked: true}
		}

		// 6.2. Свежее чтение занимающих таймлайн записей с блокировкой строк
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date, true)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.3. Первое пересечение отклоняет запрос
		for _, appt := range appointments {
			if !appt.IsOccupying() {
				continue
			}

			if domain.Overlaps(appt.StartTime, appt.EndTime, start, end) {
				uc.logger.Warn("CreateAppointment: conflict with appointment id=%d (status=%s)",
					appt.ID, appt.Status)
				return &ConflictError{IsBlocked: appt.IsBlocked()}
			}
		}

		// 6.4. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerName: req.CustomerName,
			PhoneNumber:  req.PhoneNumber,
			Date:         req.Date,
			ServiceID:    req.ServiceID,
			StartTime:    start,
			EndTime:      end,
			Status:       status,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d (status=%s)",
		result.ID, result.Status)

	return &Response{
		ID:           result.ID,
		CustomerName: result.CustomerName,
		PhoneNumber:  result.PhoneNumber,
		Date:         result.Date,
		ServiceID:    result.ServiceID,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       result.Status,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
