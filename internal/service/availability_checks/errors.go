package availability_checks

import "errors"

var (
	// ErrAvailabilityRequestNotFound возвращается, когда запрос не найден
	ErrAvailabilityRequestNotFound = errors.New("availability_checks: availability request not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability_checks: invalid input data")

	// ErrInvalidToken возвращается при неверной, просроченной или чужой ссылке
	ErrInvalidToken = errors.New("availability_checks: invalid resolve token")

	// ErrAlreadyResolved возвращается, когда на запрос уже ответили другим исходом
	ErrAlreadyResolved = errors.New("availability_checks: availability request already resolved")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability_checks: internal error")
)
