package domain

import "time"

// Бизнес-константы планировщика
const (
	// SlotDurationMinutes фиксированная длительность слота
	SlotDurationMinutes = 30
	SlotGranularity     = SlotDurationMinutes * time.Minute

	// MaxSelectedTimeSlots ограничение на количество слотов в одной заявке
	MaxSelectedTimeSlots = 20

	// DefaultMaxRangeDays горизонт запроса слотов по умолчанию (4 недели)
	DefaultMaxRangeDays = 28

	// Протокол "есть ли кто-то свободный прямо сейчас"
	AvailabilityPollInterval = 2 * time.Second
	AvailabilityPollTimeout  = 180 * time.Second
)

// Ограничения на пользовательский ввод
const (
	MaxNameLength    = 200
	MaxEmailLength   = 254
	MaxPhoneLength   = 32
	MaxCompanyLength = 200
	MaxMessageLength = 2000
	MaxReasonLength  = 500
)

// Форматы даты и времени
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// ActiveMeetingStatuses статусы встреч, которые занимают время в календаре
var ActiveMeetingStatuses = []MeetingStatus{
	MeetingStatusScheduled,
	MeetingStatusInProgress,
}
