package schedulingclient

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// StatusGetter источник статуса запроса для Poller
type StatusGetter interface {
	GetAvailabilityRequest(ctx context.Context, id uuid.UUID) (*AvailabilityRequest, error)
}

// CalendarAPI операции административного календаря
type CalendarAPI interface {
	GetCalendar(ctx context.Context, from, to time.Time) (*Calendar, error)
	CreateBlockedSlot(ctx context.Context, start, end time.Time, reason string) (*BlockedSlot, error)
	DeleteBlockedSlot(ctx context.Context, id int64) error
}
