package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	From  string          `json:"from"`
	To    string          `json:"to"`
	Count int             `json:"count"`
	Slots []AvailableSlot `json:"slots"`
	// Degraded слоты не проверены на занятость: хранилище было недоступно
	Degraded bool `json:"degraded,omitempty"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.Start,
			EndTime:         slot.End(),
			DurationMinutes: domain.SlotDurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		From:     resp.From.Format(domain.DateFormat),
		To:       resp.To.Format(domain.DateFormat),
		Count:    len(slots),
		Slots:    slots,
		Degraded: resp.Degraded,
	}
}
