package meeting_request

import "errors"

var (
	// ErrMeetingRequestNotFound возвращается, когда заявка не найдена
	ErrMeetingRequestNotFound = errors.New("meeting_request.repository: meeting request not found")

	// ErrStatusChanged статус заявки изменился конкурентно (условное обновление не затронуло строк)
	ErrStatusChanged = errors.New("meeting_request.repository: status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("meeting_request.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("meeting_request.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("meeting_request.repository: failed to scan row")
)
