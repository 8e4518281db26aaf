package meeting

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	pqExclusionViolation = "23P01"
	pqUniqueViolation    = "23505"
)

// mapInsertError переводит нарушения ограничений в ошибки репозитория
// Второе значение false, если ошибка не связана с ограничениями
func mapInsertError(err error) (error, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil, false
	}

	switch pqErr.Code {
	case pqExclusionViolation:
		return ErrSlotOccupied, true
	case pqUniqueViolation:
		return ErrDuplicateMeetingRequest, true
	default:
		return nil, false
	}
}
