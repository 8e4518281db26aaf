package confirm_meeting_request

import (
	"context"

	confirmMeetingRequest "github.com/m04kA/SMC-SchedulingService/internal/usecase/confirm_meeting_request"
)

type ConfirmMeetingRequestUseCase interface {
	Execute(ctx context.Context, req *confirmMeetingRequest.Request) (*confirmMeetingRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
