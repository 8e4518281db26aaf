package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BlockedSlotRepository источник ручных блокировок
type BlockedSlotRepository interface {
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.BlockedTimeSlot, error)
}

// MeetingRepository источник встреч
type MeetingRepository interface {
	ListActiveOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Meeting, error)
}

// MeetingRequestRepository источник ожидающих заявок
type MeetingRequestRepository interface {
	List(ctx context.Context, filter domain.MeetingRequestFilter) ([]*domain.MeetingRequest, error)
}

// RuleSetProvider источник правил рабочих часов
type RuleSetProvider interface {
	GetRuleSet(ctx context.Context) (domain.AvailabilityRuleSet, error)
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
