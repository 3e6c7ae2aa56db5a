package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetByDate получает записи на дату; onlyOccupying = true возвращает
	// только записи, занимающие таймлайн (scheduled, blocked)
	GetByDate(ctx context.Context, date time.Time, onlyOccupying bool) ([]*domain.Appointment, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ConfigRepository интерфейс репозитория конфигурации салона
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.SalonConfig, error)
}

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	GetCovering(ctx context.Context, day time.Time) ([]*domain.Closure, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
