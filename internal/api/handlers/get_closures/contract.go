package get_closures

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
)

type ClosureService interface {
	GetAll(ctx context.Context) (*models.ClosureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
