package domain

import (
	"sort"
	"time"
)

// TimeSlot кандидат на встречу: момент начала, длительность фиксирована (SlotGranularity)
type TimeSlot struct {
	Start time.Time
}

// SlotKey ключ слота для map: unix-время начала в секундах
type SlotKey int64

// NewTimeSlot создает слот, начинающийся в start
func NewTimeSlot(start time.Time) TimeSlot {
	return TimeSlot{Start: start}
}

// End момент окончания слота
func (s TimeSlot) End() time.Time {
	return s.Start.Add(SlotGranularity)
}

// Key ключ слота, не зависящий от часового пояса
func (s TimeSlot) Key() SlotKey {
	return SlotKey(s.Start.Unix())
}

// IsAligned true, если слот начинается ровно в :00 или :30
func (s TimeSlot) IsAligned() bool {
	return s.IsAlignedIn(s.Start.Location())
}

// IsAlignedIn проверяет выравнивание по сетке в часовом поясе расписания
func (s TimeSlot) IsAlignedIn(loc *time.Location) bool {
	local := s.Start.In(loc)
	return local.Second() == 0 && local.Nanosecond() == 0 && local.Minute()%SlotDurationMinutes == 0
}

// Overlaps проверяет пересечение слота с интервалом [start, end)
func (s TimeSlot) Overlaps(start, end time.Time) bool {
	return Overlaps(s.Start, s.End(), start, end)
}

// Interval полуоткрытый интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid true, если интервал непустой
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Overlaps единое правило пересечения полуоткрытых интервалов
// Граничащие интервалы (конец одного равен началу другого) не пересекаются
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// MergeIntervals сортирует интервалы по началу и склеивает пересекающиеся и соседние
// Пустые интервалы отбрасываются
func MergeIntervals(intervals []Interval) []Interval {
	valid := make([]Interval, 0, len(intervals))
	for _, in := range intervals {
		if in.IsValid() {
			valid = append(valid, in)
		}
	}
	if len(valid) == 0 {
		return valid
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].Start.Before(valid[j].Start) })

	merged := []Interval{valid[0]}
	for _, in := range valid[1:] {
		last := &merged[len(merged)-1]
		if !in.Start.After(last.End) {
			if in.End.After(last.End) {
				last.End = in.End
			}
			continue
		}
		merged = append(merged, in)
	}

	return merged
}

// SortSlots сортирует слоты по возрастанию и убирает дубли
func SortSlots(slots []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	seen := make(map[SlotKey]bool, len(slots))
	for _, s := range slots {
		if seen[s.Key()] {
			continue
		}
		seen[s.Key()] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
