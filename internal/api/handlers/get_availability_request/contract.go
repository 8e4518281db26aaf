package get_availability_request

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability_checks/models"
)

type AvailabilityCheckService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.AvailabilityRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
