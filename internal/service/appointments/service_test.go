package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentStorage "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	counts       *appointmentStorage.DailyCounts
	err          error

	updatedStatus domain.AppointmentStatus
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments[0], nil
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time, onlyOccupying bool) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) GetDailyCounts(ctx context.Context, date time.Time) (*appointmentStorage.DailyCounts, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updatedStatus = status
	appt := *f.appointments[0]
	appt.Status = status
	return &appt, nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id int64) error {
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func sampleAppointment() *domain.Appointment {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, domain.SalonLocation)
	return &domain.Appointment{
		ID:           3,
		CustomerName: "Анна",
		PhoneNumber:  "+79990001122",
		Date:         testDate,
		ServiceID:    7,
		StartTime:    start,
		EndTime:      start.Add(25 * time.Minute),
		Status:       domain.StatusScheduled,
	}
}

func TestGetByDate(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{sampleAppointment()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByDate(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, "2025-10-15", resp.Date)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Анна", resp.Appointments[0].CustomerName)
	// Времена отдаются в часовом поясе салона
	assert.Equal(t, "2025-10-15T10:00:00+05:30", resp.Appointments[0].StartTime)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{sampleAppointment()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 3, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 3, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{err: appointmentStorage.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "canceled"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{err: appointmentStorage.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetDailyStats(t *testing.T) {
	repo := &fakeAppointmentRepo{counts: &appointmentStorage.DailyCounts{
		Total:     5,
		Scheduled: 3,
		Completed: 2,
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetDailyStats(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 3, resp.Scheduled)
	assert.Equal(t, 2, resp.Completed)
}
