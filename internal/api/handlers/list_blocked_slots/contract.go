package list_blocked_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/blocked_slots/models"
)

type BlockedSlotService interface {
	List(ctx context.Context, from, to time.Time) ([]*models.BlockedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
