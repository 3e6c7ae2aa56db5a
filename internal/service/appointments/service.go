package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// Service сервис для административной работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByDate получает все записи на дату, включая отменённые и завершённые
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByDate: fetching appointments for date=%s", date.Format(domain.DateFormat))

	appointments, err := s.appointmentRepo.GetByDate(ctx, date, false)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: successfully fetched %d appointments for date=%s",
		len(appointments), date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(date, appointments), nil
}

// UpdateStatus обновляет статус записи
// Любой из четырёх статусов допустим как целевой: переходы не ограничены
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	appt, err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return models.FromDomainAppointment(appt), nil
}

// Delete удаляет запись безвозвратно
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// GetDailyStats возвращает агрегированную статистику записей за день
func (s *Service) GetDailyStats(ctx context.Context, date time.Time) (*models.DailyStatsResponse, error) {
	s.logger.Info("GetDailyStats: fetching stats for date=%s", date.Format(domain.DateFormat))

	counts, err := s.appointmentRepo.GetDailyCounts(ctx, date)
	if err != nil {
		s.logger.Error("GetDailyStats: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDailyStats - repository error: %v", ErrInternal, err)
	}

	return &models.DailyStatsResponse{
		Date:      date.Format(domain.DateFormat),
		Total:     counts.Total,
		Scheduled: counts.Scheduled,
		Completed: counts.Completed,
	}, nil
}
