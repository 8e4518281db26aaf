package domain

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRequestStatus статус запроса "есть ли кто-то свободный прямо сейчас"
type AvailabilityRequestStatus string

const (
	AvailabilityPending     AvailabilityRequestStatus = "pending"
	AvailabilityAvailable   AvailabilityRequestStatus = "available"
	AvailabilityUnavailable AvailabilityRequestStatus = "unavailable"
)

// ParseAvailabilityOutcome валидирует исход, выбранный сотрудником
func ParseAvailabilityOutcome(s string) (AvailabilityRequestStatus, bool) {
	switch status := AvailabilityRequestStatus(s); status {
	case AvailabilityAvailable, AvailabilityUnavailable:
		return status, true
	default:
		return "", false
	}
}

// AvailabilityRequest короткоживущий запрос на немедленный звонок
// ID - публичный идентификатор, по которому клиент опрашивает статус
type AvailabilityRequest struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Phone      string
	Company    *string
	Message    *string
	Status     AvailabilityRequestStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// IsResolved true, если сотрудник уже ответил
func (r *AvailabilityRequest) IsResolved() bool {
	return r.Status != AvailabilityPending
}
