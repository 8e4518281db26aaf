package calendar

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// SlotStatus итоговый статус слота в административном календаре
type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBlocked   SlotStatus = "blocked"
	StatusMeeting   SlotStatus = "meeting"
	StatusPending   SlotStatus = "pending"
	StatusPast      SlotStatus = "past"
)

// Snapshot авторитетное состояние календаря на момент загрузки
type Snapshot struct {
	BlockedSlots []*domain.BlockedTimeSlot
	Meetings     []*domain.Meeting
	Requests     []*domain.MeetingRequest
}

// SlotView проекция одного слота
type SlotView struct {
	Slot   domain.TimeSlot
	Status SlotStatus
	// MeetingID встреча, занимающая слот (только для StatusMeeting)
	MeetingID *int64
	// BlockedSlotID блокировка, закрывающая слот (только для StatusBlocked из snapshot)
	BlockedSlotID *int64
	// PendingCount число ожидающих заявок, предложивших ровно этот момент
	// Заполняется независимо от итогового статуса
	PendingCount int
	// Provisional true, если статус получен из оптимистичного оверлея
	Provisional bool
}
