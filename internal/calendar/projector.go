package calendar

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Project вычисляет статус каждого слота
//
// Приоритет: предварительная блокировка > блокировка из snapshot (если слот не
// разблокирован предварительно) > встреча > ожидающая заявка > прошедший слот > свободен
// Чистая функция, overlay может быть nil
func Project(slots []domain.TimeSlot, snapshot Snapshot, overlay *Overlay, now time.Time) []SlotView {
	pending := pendingCounts(snapshot.Requests)
	views := make([]SlotView, 0, len(slots))

	for _, slot := range slots {
		view := SlotView{Slot: slot, PendingCount: pending[slot.Key()]}
		blocked := findBlocked(snapshot.BlockedSlots, slot)
		meeting := findMeeting(snapshot.Meetings, slot)

		switch {
		case overlay.IsBlocked(slot):
			view.Status = StatusBlocked
			view.Provisional = true
		case blocked != nil && !overlay.IsUnblocked(slot):
			view.Status = StatusBlocked
			view.BlockedSlotID = &blocked.ID
		case meeting != nil:
			view.Status = StatusMeeting
			view.MeetingID = &meeting.ID
		case view.PendingCount > 0:
			view.Status = StatusPending
		case !slot.End().After(now):
			view.Status = StatusPast
		default:
			view.Status = StatusAvailable
			view.Provisional = overlay.IsUnblocked(slot)
		}

		views = append(views, view)
	}

	return views
}

func findBlocked(blocked []*domain.BlockedTimeSlot, slot domain.TimeSlot) *domain.BlockedTimeSlot {
	for _, b := range blocked {
		if b.Covers(slot) {
			return b
		}
	}
	return nil
}

func findMeeting(meetings []*domain.Meeting, slot domain.TimeSlot) *domain.Meeting {
	for _, m := range meetings {
		if m.Occupies(slot) {
			return m
		}
	}
	return nil
}

// pendingCounts считает ожидающие заявки по точному моменту начала
// Несколько заявок могут предлагать один и тот же слот
func pendingCounts(requests []*domain.MeetingRequest) map[domain.SlotKey]int {
	counts := make(map[domain.SlotKey]int)
	for _, r := range requests {
		if !r.IsPending() {
			continue
		}
		seen := make(map[domain.SlotKey]bool, len(r.SelectedTimeSlots))
		for _, s := range r.SelectedTimeSlots {
			if seen[s.Key()] {
				continue
			}
			seen[s.Key()] = true
			counts[s.Key()]++
		}
	}
	return counts
}

// Summary количество слотов по статусам
func Summary(views []SlotView) map[SlotStatus]int {
	summary := make(map[SlotStatus]int, 5)
	for _, v := range views {
		summary[v.Status]++
	}
	return summary
}
