package salonconfig

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configStorage "github.com/m04kA/SMC-SalonService/internal/infra/storage/salonconfig"
	"github.com/m04kA/SMC-SalonService/internal/service/salonconfig/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeConfigRepo struct {
	cfg       *domain.SalonConfig
	getErr    error
	createErr error
}

func (f *fakeConfigRepo) Create(ctx context.Context, cfg *domain.SalonConfig) (*domain.SalonConfig, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cfg.ID = 1
	cfg.CreatedAt = time.Now()
	cfg.UpdatedAt = cfg.CreatedAt
	return cfg, nil
}

func (f *fakeConfigRepo) Get(ctx context.Context) (*domain.SalonConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) Update(ctx context.Context, cfg *domain.SalonConfig) (*domain.SalonConfig, error) {
	cfg.UpdatedAt = time.Now()
	return cfg, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateConfigRequest {
	return &models.CreateConfigRequest{
		MorningOpens:  "09:00",
		MorningCloses: "14:00",
		EveningOpens:  "16:00",
		EveningCloses: "21:00",
		DaysOff:       []string{"sunday"},
	}
}

func TestCreate_Success(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "09:00", resp.MorningOpens)
	assert.Equal(t, []string{"sunday"}, resp.DaysOff)
}

func TestCreate_AlreadyExists(t *testing.T) {
	repo := &fakeConfigRepo{createErr: configStorage.ErrConfigAlreadyExists}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrConfigAlreadyExists)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.CreateConfigRequest)
	}{
		{"morning opens after closes", func(r *models.CreateConfigRequest) {
			r.MorningOpens = "14:00"
			r.MorningCloses = "09:00"
		}},
		{"evening window empty", func(r *models.CreateConfigRequest) {
			r.EveningOpens = ""
			r.EveningCloses = ""
		}},
		{"unknown weekday", func(r *models.CreateConfigRequest) {
			r.DaysOff = []string{"someday"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &fakeConfigRepo{getErr: configStorage.ErrConfigNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestUpdate_Partial(t *testing.T) {
	repo := &fakeConfigRepo{cfg: &domain.SalonConfig{
		ID:      1,
		Morning: domain.ShiftWindow{Opens: "09:00", Closes: "14:00"},
		Evening: domain.ShiftWindow{Opens: "16:00", Closes: "21:00"},
		DaysOff: []string{"sunday"},
	}}
	svc := NewService(repo, nopLogger{})

	// Меняется только закрытие вечерней смены
	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		EveningCloses: ptr.Ptr(types.TimeString("20:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, "09:00", resp.MorningOpens)
	assert.Equal(t, "20:00", resp.EveningCloses)
	assert.Equal(t, []string{"sunday"}, resp.DaysOff)
}

func TestUpdate_ValidatesMergedResult(t *testing.T) {
	repo := &fakeConfigRepo{cfg: &domain.SalonConfig{
		ID:      1,
		Morning: domain.ShiftWindow{Opens: "09:00", Closes: "14:00"},
		Evening: domain.ShiftWindow{Opens: "16:00", Closes: "21:00"},
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		EveningOpens: ptr.Ptr(types.TimeString("22:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakeConfigRepo{getErr: configStorage.ErrConfigNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		DaysOff: ptr.Ptr([]string{"monday"}),
	})
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
