package submit_availability_request

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability_checks/models"
)

type AvailabilityCheckService interface {
	Submit(ctx context.Context, req *models.SubmitRequest) (*models.AvailabilityRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
