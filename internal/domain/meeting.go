package domain

import "time"

// MeetingStatus статус встречи
type MeetingStatus string

const (
	MeetingStatusScheduled  MeetingStatus = "scheduled"
	MeetingStatusInProgress MeetingStatus = "in-progress"
	MeetingStatusCompleted  MeetingStatus = "completed"
	MeetingStatusCancelled  MeetingStatus = "cancelled"
)

// MeetingAccessType кто может присоединиться к встрече
type MeetingAccessType string

const (
	MeetingAccessUsers   MeetingAccessType = "users"
	MeetingAccessCompany MeetingAccessType = "company"
	MeetingAccessPublic  MeetingAccessType = "public"
)

// Meeting запланированная встреча
type Meeting struct {
	ID                    int64
	HostUserID            int64
	ParticipantUserIDs    []int64
	ParticipantCompanyIDs []int64
	AccessType            MeetingAccessType
	ScheduledAt           time.Time
	DurationMinutes       int
	Status                MeetingStatus
	// JoinReference публичная ссылка-идентификатор для подключения к встрече
	JoinReference string
	// MeetingRequestID слабая обратная ссылка на заявку, из которой создана встреча
	// Удаление любой из сторон не каскадируется
	MeetingRequestID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndsAt момент окончания встречи
func (m *Meeting) EndsAt() time.Time {
	return m.ScheduledAt.Add(time.Duration(m.DurationMinutes) * time.Minute)
}

// Interval занятый встречей интервал [scheduledAt, scheduledAt+duration)
func (m *Meeting) Interval() Interval {
	return Interval{Start: m.ScheduledAt, End: m.EndsAt()}
}

// IsActive true, если встреча занимает время в календаре
func (m *Meeting) IsActive() bool {
	return m.Status == MeetingStatusScheduled || m.Status == MeetingStatusInProgress
}

// Occupies true, если активная встреча пересекается со слотом
func (m *Meeting) Occupies(slot TimeSlot) bool {
	return m.IsActive() && slot.Overlaps(m.ScheduledAt, m.EndsAt())
}
