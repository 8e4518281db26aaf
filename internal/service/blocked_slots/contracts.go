package blocked_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BlockedSlotRepository хранилище блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, slot *domain.BlockedTimeSlot) (*domain.BlockedTimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.BlockedTimeSlot, error)
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.BlockedTimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
