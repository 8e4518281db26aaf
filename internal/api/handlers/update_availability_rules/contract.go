package update_availability_rules

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability_rules/models"
)

type AvailabilityRulesService interface {
	Replace(ctx context.Context, req *models.UpdateRulesRequest) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
