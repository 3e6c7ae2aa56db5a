package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	serviceStorage "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/internal/service/services/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type fakeServiceRepo struct {
	byID    *domain.Service
	byIDErr error
	all     []*domain.Service
	updated *domain.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	svc.ID = 7
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	return svc, nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeServiceRepo) GetAll(ctx context.Context) ([]*domain.Service, error) {
	return f.all, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	f.updated = svc
	return svc, nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id int64) error {
	if f.byIDErr != nil {
		return f.byIDErr
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Success(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:            "Стрижка",
		DurationMinutes: 45,
		Price:           1500,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Стрижка", resp.Name)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"empty name", models.CreateServiceRequest{Name: "  ", DurationMinutes: 45, Price: 100}},
		{"duration too short", models.CreateServiceRequest{Name: "Стрижка", DurationMinutes: domain.MinServiceDurationMinutes - 1, Price: 100}},
		{"duration too long", models.CreateServiceRequest{Name: "Стрижка", DurationMinutes: domain.MaxServiceDurationMinutes + 1, Price: 100}},
		{"negative price", models.CreateServiceRequest{Name: "Стрижка", DurationMinutes: 45, Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{byIDErr: serviceStorage.ErrServiceNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetAll(t *testing.T) {
	repo := &fakeServiceRepo{all: []*domain.Service{
		{ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: 1500},
		{ID: 2, Name: "Окрашивание", DurationMinutes: 120, Price: 4000},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Окрашивание", resp.Services[1].Name)
}

func TestUpdate_Partial(t *testing.T) {
	repo := &fakeServiceRepo{byID: &domain.Service{
		ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: 1500,
	}}
	svc := NewService(repo, nopLogger{})

	// Обновляется только цена, остальные поля сохраняются
	resp, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		Price: ptr.Ptr(1800.0),
	})
	require.NoError(t, err)

	assert.Equal(t, "Стрижка", resp.Name)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, 1800.0, resp.Price)
}

func TestUpdate_ValidatesMergedResult(t *testing.T) {
	repo := &fakeServiceRepo{byID: &domain.Service{
		ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: 1500,
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		DurationMinutes: ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updated)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{byIDErr: serviceStorage.ErrServiceNotFound}, nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateServiceRequest{
		Price: ptr.Ptr(100.0),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{byIDErr: serviceStorage.ErrServiceNotFound}, nopLogger{})

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
