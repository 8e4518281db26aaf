package domain

import "time"

// Slots разворачивает диапазон [from, to) в упорядоченные слоты по правилам
// Дни перебираются в часовом поясе from, окна задаются локальным временем
// Слот выдается, только если он целиком помещается в окно: start+30m <= close
func (s AvailabilityRuleSet) Slots(from, to time.Time) []TimeSlot {
	if !from.Before(to) {
		return []TimeSlot{}
	}

	loc := from.Location()
	slots := make([]TimeSlot, 0)

	for day := startOfDay(from); day.Before(to); day = day.AddDate(0, 0, 1) {
		rule := s.RuleFor(day.Weekday())
		if !rule.IsOpen() {
			continue
		}

		for minute := rule.OpenMinute; minute+SlotDurationMinutes <= rule.CloseMinute; minute += SlotDurationMinutes {
			start := time.Date(day.Year(), day.Month(), day.Day(), 0, minute, 0, 0, loc)
			if start.Before(from) || !start.Before(to) {
				continue
			}
			slots = append(slots, NewTimeSlot(start))
		}
	}

	return slots
}

// Offers true, если start совпадает с одним из слотов, которые правила выдают на его день в loc
func (s AvailabilityRuleSet) Offers(start time.Time, loc *time.Location) bool {
	dayStart := startOfDay(start.In(loc))
	for _, slot := range s.Slots(dayStart, dayStart.AddDate(0, 0, 1)) {
		if slot.Start.Equal(start) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
