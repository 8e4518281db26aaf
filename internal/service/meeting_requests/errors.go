package meeting_requests

import "errors"

var (
	// ErrMeetingRequestNotFound возвращается, когда заявка не найдена
	ErrMeetingRequestNotFound = errors.New("meeting_requests: meeting request not found")

	// ErrInvalidState возвращается, когда заявка уже не в статусе pending
	ErrInvalidState = errors.New("meeting_requests: meeting request is not pending")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("meeting_requests: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("meeting_requests: internal error")
)
