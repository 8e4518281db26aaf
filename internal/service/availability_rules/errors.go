package availability_rules

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном наборе правил
	ErrInvalidInput = errors.New("availability_rules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability_rules: internal error")
)
