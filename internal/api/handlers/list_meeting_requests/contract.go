package list_meeting_requests

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests/models"
)

type MeetingRequestService interface {
	List(ctx context.Context, req *models.ListMeetingRequestsRequest) ([]*models.MeetingRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
