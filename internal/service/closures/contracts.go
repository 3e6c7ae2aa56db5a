package closures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	Create(ctx context.Context, c *domain.Closure) (*domain.Closure, error)
	GetAll(ctx context.Context) ([]*domain.Closure, error)
	GetIntersectingRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Closure, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
