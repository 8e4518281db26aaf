package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BlockedSlotRepository источник ручных блокировок
type BlockedSlotRepository interface {
	// ListOverlapping возвращает блокировки, пересекающиеся с [from, to)
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.BlockedTimeSlot, error)
}

// MeetingRepository источник встреч
type MeetingRepository interface {
	// ListActiveOverlapping возвращает активные встречи, пересекающиеся с [from, to)
	ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Meeting, error)
}

// RuleSetProvider источник правил рабочих часов
type RuleSetProvider interface {
	GetRuleSet(ctx context.Context) (domain.AvailabilityRuleSet, error)
}

// MetricsRecorder счетчик запросов слотов
type MetricsRecorder interface {
	ObserveSlotQuery(degraded bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
