package closures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	closureStorage "github.com/m04kA/SMC-SalonService/internal/infra/storage/closure"
	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
)

type fakeClosureRepo struct {
	existing  []*domain.Closure
	created   *domain.Closure
	deleteErr error
}

func (f *fakeClosureRepo) Create(ctx context.Context, closure *domain.Closure) (*domain.Closure, error) {
	closure.ID = 11
	closure.CreatedAt = time.Now()
	closure.UpdatedAt = closure.CreatedAt
	f.created = closure
	return closure, nil
}

func (f *fakeClosureRepo) GetAll(ctx context.Context) ([]*domain.Closure, error) {
	return f.existing, nil
}

func (f *fakeClosureRepo) GetIntersectingRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Closure, error) {
	return f.existing, nil
}

func (f *fakeClosureRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_FullDay(t *testing.T) {
	repo := &fakeClosureRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateClosureRequest{
		StartDate: "2025-10-15",
		EndDate:   "2025-10-15",
		IsFullDay: true,
		Reason:    "Инвентаризация",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.True(t, resp.IsFullDay)
	assert.Equal(t, "Инвентаризация", resp.Reason)
}

func TestCreate_DefaultReason(t *testing.T) {
	svc := NewService(&fakeClosureRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateClosureRequest{
		StartDate: "2025-10-15",
		EndDate:   "2025-10-15",
		IsFullDay: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultClosureReason, resp.Reason)
}

func TestCreate_MultiDayForcesFullDay(t *testing.T) {
	repo := &fakeClosureRepo{}
	svc := NewService(repo, nopLogger{})

	// Частичное закрытие на диапазон из нескольких дней приводится
	// к полнодневному, времена игнорируются
	resp, err := svc.Create(context.Background(), &models.CreateClosureRequest{
		StartDate: "2025-10-15",
		EndDate:   "2025-10-17",
		IsFullDay: false,
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsFullDay)
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.StartTime.IsZero())
	assert.True(t, repo.created.EndTime.IsZero())
}

func TestCreate_PartialClosure(t *testing.T) {
	repo := &fakeClosureRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateClosureRequest{
		StartDate: "2025-10-15",
		EndDate:   "2025-10-15",
		StartTime: "10:00",
		EndTime:   "12:30",
	})
	require.NoError(t, err)

	assert.False(t, resp.IsFullDay)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "12:30", resp.EndTime)
}

func TestCreate_Overlap(t *testing.T) {
	repo := &fakeClosureRepo{existing: []*domain.Closure{{ID: 5, IsFullDay: true}}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateClosureRequest{
		StartDate: "2025-10-15",
		EndDate:   "2025-10-15",
		IsFullDay: true,
	})
	assert.ErrorIs(t, err, ErrClosureOverlap)
	assert.Nil(t, repo.created)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeClosureRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.CreateClosureRequest
	}{
		{
			name: "missing dates",
			req:  models.CreateClosureRequest{IsFullDay: true},
		},
		{
			name: "bad date format",
			req:  models.CreateClosureRequest{StartDate: "15.10.2025", EndDate: "2025-10-15", IsFullDay: true},
		},
		{
			name: "end before start",
			req:  models.CreateClosureRequest{StartDate: "2025-10-15", EndDate: "2025-10-14", IsFullDay: true},
		},
		{
			name: "partial without times",
			req:  models.CreateClosureRequest{StartDate: "2025-10-15", EndDate: "2025-10-15"},
		},
		{
			name: "partial with one time",
			req:  models.CreateClosureRequest{StartDate: "2025-10-15", EndDate: "2025-10-15", StartTime: "10:00"},
		},
		{
			name: "misaligned time",
			req:  models.CreateClosureRequest{StartDate: "2025-10-15", EndDate: "2025-10-15", StartTime: "10:02", EndTime: "12:00"},
		},
		{
			name: "start not before end",
			req:  models.CreateClosureRequest{StartDate: "2025-10-15", EndDate: "2025-10-15", StartTime: "12:00", EndTime: "12:00"},
		},
		{
			name: "invalid time",
			req:  models.CreateClosureRequest{StartDate: "2025-10-15", EndDate: "2025-10-15", StartTime: "25:00", EndTime: "26:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetAll(t *testing.T) {
	repo := &fakeClosureRepo{existing: []*domain.Closure{
		{ID: 1, StartDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), IsFullDay: true, Reason: "Ремонт"},
		{ID: 2, StartDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "12:00", Reason: "Обучение"},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Closures, 2)

	assert.Equal(t, "2025-10-15", resp.Closures[0].StartDate)
	assert.Equal(t, "10:00", resp.Closures[1].StartTime)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeClosureRepo{deleteErr: closureStorage.ErrClosureNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrClosureNotFound)
}

func TestDelete_RepositoryError(t *testing.T) {
	repo := &fakeClosureRepo{deleteErr: errors.New("db down")}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
