package salonconfig

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации салона
type ConfigRepository interface {
	Create(ctx context.Context, cfg *domain.SalonConfig) (*domain.SalonConfig, error)
	Get(ctx context.Context) (*domain.SalonConfig, error)
	Update(ctx context.Context, cfg *domain.SalonConfig) (*domain.SalonConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
