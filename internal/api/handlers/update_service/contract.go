package update_service

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/services/models"
)

type ServiceCatalog interface {
	Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
