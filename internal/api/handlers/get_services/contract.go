package get_services

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/services/models"
)

type ServiceCatalog interface {
	GetAll(ctx context.Context) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
