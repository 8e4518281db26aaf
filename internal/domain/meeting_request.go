package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTransition переход статуса заявки запрещен
	ErrInvalidTransition = errors.New("domain: invalid meeting request transition")

	// ErrSlotNotSelected выбранный слот отсутствует среди предложенных заявителем
	ErrSlotNotSelected = errors.New("domain: slot is not among selected time slots")
)

// MeetingRequestStatus статус заявки на встречу
type MeetingRequestStatus string

const (
	MeetingRequestPending   MeetingRequestStatus = "pending"
	MeetingRequestConfirmed MeetingRequestStatus = "confirmed"
	MeetingRequestCancelled MeetingRequestStatus = "cancelled"
)

// ParseMeetingRequestStatus конвертирует строку в статус с валидацией
func ParseMeetingRequestStatus(s string) (MeetingRequestStatus, error) {
	switch status := MeetingRequestStatus(s); status {
	case MeetingRequestPending, MeetingRequestConfirmed, MeetingRequestCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown meeting request status %q", s)
	}
}

// MeetingRequest заявка на встречу с несколькими подходящими заявителю слотами
// Статус меняется только в одну сторону: pending -> confirmed | cancelled
type MeetingRequest struct {
	ID                int64
	Name              string
	Email             string
	Company           *string
	Phone             string
	Message           *string
	SelectedTimeSlots []TimeSlot
	Status            MeetingRequestStatus
	ConfirmedSlot     *TimeSlot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending true, если заявка еще ожидает решения
func (r *MeetingRequest) IsPending() bool {
	return r.Status == MeetingRequestPending
}

// HasSlot true, если заявитель предложил именно этот момент
func (r *MeetingRequest) HasSlot(slot TimeSlot) bool {
	for _, s := range r.SelectedTimeSlots {
		if s.Start.Equal(slot.Start) {
			return true
		}
	}
	return false
}

// Confirm фиксирует выбранный слот и переводит заявку в confirmed
func (r *MeetingRequest) Confirm(slot TimeSlot) error {
	if !r.IsPending() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, MeetingRequestConfirmed)
	}
	if !r.HasSlot(slot) {
		return ErrSlotNotSelected
	}
	confirmed := slot
	r.Status = MeetingRequestConfirmed
	r.ConfirmedSlot = &confirmed
	return nil
}

// Cancel переводит заявку в cancelled
func (r *MeetingRequest) Cancel() error {
	if !r.IsPending() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, MeetingRequestCancelled)
	}
	r.Status = MeetingRequestCancelled
	return nil
}

// MeetingRequestFilter фильтр списка заявок
type MeetingRequestFilter struct {
	Status *MeetingRequestStatus // Фильтр по статусу (опционально)
	// SlotFrom/SlotTo - хотя бы один выбранный слот попадает в [SlotFrom, SlotTo) (опционально)
	SlotFrom *time.Time
	SlotTo   *time.Time
}
