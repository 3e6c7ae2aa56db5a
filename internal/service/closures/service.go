package closures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	closureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/closure"
	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Service сервис для работы с закрытиями салона
type Service struct {
	closureRepo ClosureRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса закрытий
func NewService(closureRepo ClosureRepository, logger Logger) *Service {
	return &Service{
		closureRepo: closureRepo,
		logger:      logger,
	}
}

// Create создает новое закрытие
// Диапазон дат не может пересекаться с существующими закрытиями.
// Диапазон из нескольких дней всегда приводится к полнодневному закрытию
func (s *Service) Create(ctx context.Context, req *models.CreateClosureRequest) (*models.ClosureResponse, error) {
	s.logger.Info("Create: creating closure from=%s to=%s, fullDay=%v",
		req.StartDate, req.EndDate, req.IsFullDay)

	// 1. Валидируем входные данные и собираем domain модель
	closure, err := s.buildClosure(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем пересечение с существующими закрытиями
	intersecting, err := s.closureRepo.GetIntersectingRange(ctx, closure.StartDate, closure.EndDate)
	if err != nil {
		s.logger.Error("Create: failed to check intersecting closures: %v", err)
		return nil, fmt.Errorf("%w: failed to check intersecting closures: %v", ErrInternal, err)
	}
	if len(intersecting) > 0 {
		s.logger.Warn("Create: closure range %s..%s overlaps existing closure id=%d",
			req.StartDate, req.EndDate, intersecting[0].ID)
		return nil, ErrClosureOverlap
	}

	// 3. Создаем закрытие
	created, err := s.closureRepo.Create(ctx, closure)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created closure id=%d", created.ID)
	return models.FromDomainClosure(created), nil
}

// GetAll получает все закрытия
func (s *Service) GetAll(ctx context.Context) (*models.ClosureListResponse, error) {
	s.logger.Info("GetAll: fetching all closures")

	closures, err := s.closureRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d closures", len(closures))
	return models.FromDomainClosureList(closures), nil
}

// Delete удаляет закрытие по ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting closure id=%d", id)

	if err := s.closureRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("Delete: closure id=%d not found", id)
			return ErrClosureNotFound
		}
		s.logger.Error("Delete: repository error for closure id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted closure id=%d", id)
	return nil
}

// buildClosure валидирует запрос и собирает domain модель закрытия
func (s *Service) buildClosure(req *models.CreateClosureRequest) (*domain.Closure, error) {
	if req.StartDate == "" || req.EndDate == "" {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	startDate, err := time.ParseInLocation(domain.DateFormat, req.StartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	endDate, err := time.ParseInLocation(domain.DateFormat, req.EndDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endDate format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate must not precede startDate", ErrInvalidInput)
	}

	if len(req.Reason) > domain.MaxClosureReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxClosureReasonLength)
	}

	closure := &domain.Closure{
		StartDate: startDate,
		EndDate:   endDate,
		IsFullDay: req.IsFullDay,
		Reason:    req.Reason,
	}
	if closure.Reason == "" {
		closure.Reason = domain.DefaultClosureReason
	}

	// Диапазон из нескольких дней всегда полнодневный
	if !startDate.Equal(endDate) {
		closure.IsFullDay = true
	}

	if closure.IsFullDay {
		return closure, nil
	}

	// Частичное закрытие: оба времени обязательны, выровнены по шагу
	// и начало раньше конца
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: partial closure requires startTime and endTime", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if err := s.checkAlignment(req.StartTime); err != nil {
		return nil, err
	}
	if err := s.checkAlignment(req.EndTime); err != nil {
		return nil, err
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return nil, fmt.Errorf("%w: startTime must precede endTime", ErrInvalidInput)
	}

	closure.StartTime = req.StartTime
	closure.EndTime = req.EndTime
	return closure, nil
}

// checkAlignment проверяет выравнивание границы окна по шагу закрытий
func (s *Service) checkAlignment(t types.TimeString) error {
	minutes, err := t.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid time %q", ErrInvalidInput, t)
	}
	if minutes%domain.ClosureTimeStepMinutes != 0 {
		return fmt.Errorf("%w: time %q must be aligned to %d minutes",
			ErrInvalidInput, t, domain.ClosureTimeStepMinutes)
	}
	return nil
}
