package create_blocked_slot

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/blocked_slots/models"
)

type BlockedSlotService interface {
	Create(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
