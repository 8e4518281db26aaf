package create_meeting_request

import (
	"context"

	createMeetingRequest "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_meeting_request"
)

type CreateMeetingRequestUseCase interface {
	Execute(ctx context.Context, req *createMeetingRequest.Request) (*createMeetingRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
