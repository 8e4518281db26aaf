package availability_request

import "errors"

var (
	// ErrAvailabilityRequestNotFound возвращается, когда запрос не найден
	ErrAvailabilityRequestNotFound = errors.New("availability_request.repository: availability request not found")

	// ErrNotPending запрос уже разрешен (условное обновление не затронуло строк)
	ErrNotPending = errors.New("availability_request.repository: availability request is not pending")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability_request.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability_request.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability_request.repository: failed to scan row")
)
