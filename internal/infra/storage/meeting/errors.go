package meeting

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда встреча не найдена
	ErrMeetingNotFound = errors.New("meeting.repository: meeting not found")

	// ErrSlotOccupied интервал уже занят активной встречей (exclusion constraint)
	ErrSlotOccupied = errors.New("meeting.repository: slot already occupied by another meeting")

	// ErrDuplicateMeetingRequest по заявке уже создана встреча
	ErrDuplicateMeetingRequest = errors.New("meeting.repository: meeting for request already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("meeting.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("meeting.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("meeting.repository: failed to scan row")
)
