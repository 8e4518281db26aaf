package confirm_meeting_request

import "errors"

var (
	// ErrMeetingRequestNotFound возвращается, когда заявка не найдена
	ErrMeetingRequestNotFound = errors.New("confirm_meeting_request: meeting request not found")

	// ErrInvalidState возвращается, когда заявка уже не в статусе pending
	ErrInvalidState = errors.New("confirm_meeting_request: meeting request is not pending")

	// ErrInvalidSlot возвращается, когда слот не входит в выбранные заявителем
	ErrInvalidSlot = errors.New("confirm_meeting_request: slot is not among selected time slots")

	// ErrSlotTaken возвращается, когда слот уже занят другой активной встречей
	ErrSlotTaken = errors.New("confirm_meeting_request: slot is already taken by another meeting")

	// ErrSlotBlocked возвращается, когда слот закрыт блокировкой администратора
	ErrSlotBlocked = errors.New("confirm_meeting_request: slot is blocked")

	// ErrConcurrentUpdate возвращается при конфликте с параллельной транзакцией; операцию можно повторить
	ErrConcurrentUpdate = errors.New("confirm_meeting_request: concurrent update, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_meeting_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_meeting_request: internal error")
)
