package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном диапазоне дат
	ErrInvalidInput = errors.New("get_available_slots: invalid input")

	// ErrRangeTooLarge возвращается, когда диапазон превышает допустимый горизонт
	ErrRangeTooLarge = errors.New("get_available_slots: date range too large")

	// ErrConflictSourceUnavailable источник конфликтов недоступен
	// Наружу не возвращается: use case отдает неотфильтрованные слоты с флагом Degraded
	ErrConflictSourceUnavailable = errors.New("get_available_slots: conflict source unavailable")
)
