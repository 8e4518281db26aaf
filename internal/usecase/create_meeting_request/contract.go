package create_meeting_request

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// MeetingRequestRepository интерфейс репозитория заявок
type MeetingRequestRepository interface {
	Create(ctx context.Context, req *domain.MeetingRequest) (*domain.MeetingRequest, error)
}

// RuleSetProvider источник правил рабочих часов
type RuleSetProvider interface {
	GetRuleSet(ctx context.Context) (domain.AvailabilityRuleSet, error)
}

// Notifier отправка уведомления о новой заявке
type Notifier interface {
	MeetingRequestCreated(ctx context.Context, req *domain.MeetingRequest) error
}

// MetricsRecorder доменные счетчики
type MetricsRecorder interface {
	RecordTransition(status string)
	RecordNotificationFailure(event string)
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
