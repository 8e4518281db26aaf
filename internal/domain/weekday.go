package domain

import (
	"strings"
	"time"
)

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday разбирает название дня недели ("monday", "Friday")
func ParseWeekday(name string) (time.Weekday, bool) {
	day, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(name))]
	return day, ok
}

// WeekdayName название дня недели в нижнем регистре
func WeekdayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}
