package notifications

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Типы событий (суффиксы subject'ов)
const (
	EventMeetingRequestCreated      = "meeting_request.created"
	EventMeetingRequestConfirmed    = "meeting_request.confirmed"
	EventMeetingRequestCancelled    = "meeting_request.cancelled"
	EventAvailabilityRequestCreated = "availability_request.created"
)

// Event конверт события для сервиса рассылки
type Event struct {
	Type                string               `json:"type"`
	Timestamp           time.Time            `json:"timestamp"`
	MeetingRequest      *MeetingRequest      `json:"meetingRequest,omitempty"`
	Meeting             *Meeting             `json:"meeting,omitempty"`
	AvailabilityRequest *AvailabilityRequest `json:"availabilityRequest,omitempty"`
}

// MeetingRequest данные заявки для письма заявителю/администратору
type MeetingRequest struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Company           *string     `json:"company,omitempty"`
	Phone             string      `json:"phone"`
	Message           *string     `json:"message,omitempty"`
	SelectedTimeSlots []time.Time `json:"selectedTimeSlots"`
	Status            string      `json:"status"`
	ConfirmedSlot     *time.Time  `json:"confirmedSlot,omitempty"`
}

// Meeting данные встречи для письма с подтверждением
type Meeting struct {
	ID              int64     `json:"id"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	JoinReference   string    `json:"joinReference"`
}

// AvailabilityRequest данные запроса "есть ли кто-то свободный"
// ResolveLinks - две ссылки, по одной на каждый исход
type AvailabilityRequest struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Company      *string      `json:"company,omitempty"`
	Message      *string      `json:"message,omitempty"`
	ResolveLinks ResolveLinks `json:"resolveLinks"`
}

// ResolveLinks ссылки ответа сотрудника
type ResolveLinks struct {
	Available   string `json:"available"`
	Unavailable string `json:"unavailable"`
}

func fromMeetingRequest(r *domain.MeetingRequest) *MeetingRequest {
	slots := make([]time.Time, len(r.SelectedTimeSlots))
	for i, s := range r.SelectedTimeSlots {
		slots[i] = s.Start.UTC()
	}

	out := &MeetingRequest{
		ID:                r.ID,
		Name:              r.Name,
		Email:             r.Email,
		Company:           r.Company,
		Phone:             r.Phone,
		Message:           r.Message,
		SelectedTimeSlots: slots,
		Status:            string(r.Status),
	}
	if r.ConfirmedSlot != nil {
		start := r.ConfirmedSlot.Start.UTC()
		out.ConfirmedSlot = &start
	}
	return out
}

func fromMeeting(m *domain.Meeting) *Meeting {
	return &Meeting{
		ID:              m.ID,
		ScheduledAt:     m.ScheduledAt.UTC(),
		DurationMinutes: m.DurationMinutes,
		JoinReference:   m.JoinReference,
	}
}

func fromAvailabilityRequest(r *domain.AvailabilityRequest, links ResolveLinks) *AvailabilityRequest {
	return &AvailabilityRequest{
		ID:           r.ID.String(),
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Company:      r.Company,
		Message:      r.Message,
		ResolveLinks: links,
	}
}
