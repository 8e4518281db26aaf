package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// SubmitRequest запрос посетителя на немедленный звонок
type SubmitRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company *string `json:"company,omitempty"`
	Message *string `json:"message,omitempty"`
}

// AvailabilityRequestResponse состояние запроса и параметры опроса
type AvailabilityRequestResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
	ResolvedAt          *time.Time `json:"resolvedAt,omitempty"`
	PollIntervalSeconds int        `json:"pollIntervalSeconds"`
	TimeoutSeconds      int        `json:"timeoutSeconds"`
	// Expired клиент уже должен был прекратить опрос
	Expired bool `json:"expired"`
}

// ToContact конвертирует запрос в контактные данные
func (r *SubmitRequest) ToContact() domain.Contact {
	return domain.Contact{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Message: r.Message,
	}
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(req *domain.AvailabilityRequest, pollInterval, timeout time.Duration, now time.Time) *AvailabilityRequestResponse {
	return &AvailabilityRequestResponse{
		ID:                  req.ID,
		Status:              string(req.Status),
		CreatedAt:           req.CreatedAt,
		ResolvedAt:          req.ResolvedAt,
		PollIntervalSeconds: int(pollInterval / time.Second),
		TimeoutSeconds:      int(timeout / time.Second),
		Expired:             !req.IsResolved() && now.After(req.CreatedAt.Add(timeout)),
	}
}
