package cancel_meeting_request

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests/models"
)

type MeetingRequestService interface {
	Cancel(ctx context.Context, id int64) (*models.MeetingRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
