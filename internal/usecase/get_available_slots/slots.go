package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// filterConflicts убирает слоты, пересекающиеся с любым из интервалов
// Интервалы склеиваются и проходятся одним указателем, слоты должны быть отсортированы
func filterConflicts(candidates []domain.TimeSlot, conflicts []domain.Interval) []domain.TimeSlot {
	merged := domain.MergeIntervals(conflicts)
	if len(merged) == 0 {
		return candidates
	}

	free := make([]domain.TimeSlot, 0, len(candidates))
	j := 0
	for _, slot := range candidates {
		for j < len(merged) && !merged[j].End.After(slot.Start) {
			j++
		}
		if j < len(merged) && slot.Overlaps(merged[j].Start, merged[j].End) {
			continue
		}
		free = append(free, slot)
	}

	return free
}

// dropPast убирает слоты, начавшиеся до now
func dropPast(slots []domain.TimeSlot, now time.Time) []domain.TimeSlot {
	for i, slot := range slots {
		if !slot.Start.Before(now) {
			return slots[i:]
		}
	}
	return []domain.TimeSlot{}
}

func conflictIntervals(blocked []*domain.BlockedTimeSlot, meetings []*domain.Meeting) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(blocked)+len(meetings))
	for _, b := range blocked {
		intervals = append(intervals, b.Interval())
	}
	for _, m := range meetings {
		if m.IsActive() {
			intervals = append(intervals, m.Interval())
		}
	}
	return intervals
}
