package availability_checks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/notifications"
)

// AvailabilityRequestRepository хранилище запросов "свободен ли кто-то сейчас"
type AvailabilityRequestRepository interface {
	Create(ctx context.Context, req *domain.AvailabilityRequest) (*domain.AvailabilityRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AvailabilityRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, status domain.AvailabilityRequestStatus, resolvedAt time.Time) (*domain.AvailabilityRequest, error)
	DeletePendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// LinkSigner подпись ссылок, по которым сотрудник отвечает на запрос
type LinkSigner interface {
	Sign(requestID uuid.UUID, outcome string) (string, error)
	Verify(raw string, requestID uuid.UUID) (string, error)
}

// Notifier отправка письма сотрудникам
type Notifier interface {
	AvailabilityRequestCreated(ctx context.Context, req *domain.AvailabilityRequest, links notifications.ResolveLinks) error
}

// MetricsRecorder доменные счетчики
type MetricsRecorder interface {
	RecordNotificationFailure(event string)
	AddPurgedAvailabilityRequests(n int64)
}

// Purger удаление зависших запросов (реализуется Service)
type Purger interface {
	PurgeStale(ctx context.Context) (int64, error)
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
