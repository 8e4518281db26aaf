package meeting_requests

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// MeetingRequestRepository хранилище заявок
type MeetingRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.MeetingRequest, error)
	List(ctx context.Context, filter domain.MeetingRequestFilter) ([]*domain.MeetingRequest, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.MeetingRequestStatus, confirmedSlot *time.Time) (*domain.MeetingRequest, error)
}

// Notifier отправка уведомлений заявителю
type Notifier interface {
	MeetingRequestCancelled(ctx context.Context, req *domain.MeetingRequest) error
}

// MetricsRecorder доменные счетчики
type MetricsRecorder interface {
	RecordTransition(status string)
	RecordNotificationFailure(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
