package confirm_meeting_request

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// MeetingRequestRepository интерфейс репозитория заявок
type MeetingRequestRepository interface {
	// GetByID внутри транзакции блокирует строку (FOR UPDATE)
	GetByID(ctx context.Context, id int64) (*domain.MeetingRequest, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.MeetingRequestStatus, confirmedSlot *time.Time) (*domain.MeetingRequest, error)
}

// MeetingRepository интерфейс репозитория встреч
type MeetingRepository interface {
	HasActiveOverlap(ctx context.Context, from, to time.Time) (bool, error)
	Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.BlockedTimeSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка подтверждения заявителю
type Notifier interface {
	MeetingRequestConfirmed(ctx context.Context, req *domain.MeetingRequest, meeting *domain.Meeting) error
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
