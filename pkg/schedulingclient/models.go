package schedulingclient

import (
	"time"

	"github.com/google/uuid"
)

// Outcome итог ожидания ответа на запрос "есть ли кто-то свободный"
type Outcome string

const (
	OutcomeAvailable   Outcome = "available"
	OutcomeUnavailable Outcome = "unavailable"
	// OutcomeTimeout никто не ответил за отведенное время
	OutcomeTimeout Outcome = "timeout"
)

// FallsThrough true, если вызывающему нужно перейти к обычной заявке со слотами
func (o Outcome) FallsThrough() bool {
	return o != OutcomeAvailable
}

// ContactForm контактные данные посетителя
type ContactForm struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company *string `json:"company,omitempty"`
	Message *string `json:"message,omitempty"`
}

// AvailabilityRequest состояние запроса
type AvailabilityRequest struct {
	ID                  uuid.UUID  `json:"id"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
	ResolvedAt          *time.Time `json:"resolvedAt,omitempty"`
	PollIntervalSeconds int        `json:"pollIntervalSeconds"`
	TimeoutSeconds      int        `json:"timeoutSeconds"`
	Expired             bool       `json:"expired"`
}

// BlockedSlot блокировка интервала
type BlockedSlot struct {
	ID              int64     `json:"id"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Reason          string    `json:"reason,omitempty"`
	CreatedByUserID int64     `json:"createdByUserId"`
}

type createBlockedSlotRequest struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    string    `json:"reason"`
}

// Calendar ответ административного календаря
type Calendar struct {
	From            string           `json:"from"`
	To              string           `json:"to"`
	Slots           []CalendarSlot   `json:"slots"`
	Summary         map[string]int   `json:"summary"`
	BlockedSlots    []BlockedSlot    `json:"blockedSlots"`
	Meetings        []Meeting        `json:"meetings"`
	PendingRequests []PendingRequest `json:"pendingRequests"`
}

// CalendarSlot статус слота, посчитанный сервером
type CalendarSlot struct {
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	MeetingID     *int64    `json:"meetingId,omitempty"`
	BlockedSlotID *int64    `json:"blockedSlotId,omitempty"`
	PendingCount  int       `json:"pendingCount"`
}

type Meeting struct {
	ID               int64     `json:"id"`
	ScheduledAt      time.Time `json:"scheduledAt"`
	DurationMinutes  int       `json:"durationMinutes"`
	Status           string    `json:"status"`
	HostUserID       int64     `json:"hostUserId"`
	MeetingRequestID *int64    `json:"meetingRequestId,omitempty"`
}

type PendingRequest struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	SelectedTimeSlots []time.Time `json:"selectedTimeSlots"`
}

// ErrorResponse модель ошибки сервиса
type ErrorResponse struct {
	Error string `json:"error"`
}
