package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CreateBlockedSlotRequest запрос на блокировку интервала
type CreateBlockedSlotRequest struct {
	UserID    int64     `json:"-"` // из токена администратора
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    string    `json:"reason"`
}

// BlockedSlotResponse блокировка
type BlockedSlotResponse struct {
	ID              int64     `json:"id"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Reason          string    `json:"reason,omitempty"`
	CreatedByUserID int64     `json:"createdByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToDomain конвертирует запрос в доменную модель
func (r *CreateBlockedSlotRequest) ToDomain() *domain.BlockedTimeSlot {
	return &domain.BlockedTimeSlot{
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Reason:          r.Reason,
		CreatedByUserID: r.UserID,
	}
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(slot *domain.BlockedTimeSlot) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:              slot.ID,
		StartTime:       slot.StartTime,
		EndTime:         slot.EndTime,
		Reason:          slot.Reason,
		CreatedByUserID: slot.CreatedByUserID,
		CreatedAt:       slot.CreatedAt,
	}
}

// FromDomainList конвертирует список блокировок
func FromDomainList(slots []*domain.BlockedTimeSlot) []*BlockedSlotResponse {
	result := make([]*BlockedSlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, FromDomain(slot))
	}
	return result
}
