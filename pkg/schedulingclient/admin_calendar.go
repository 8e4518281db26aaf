package schedulingclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AdminCalendar календарь администратора с оптимистичным оверлеем
// Оверлей очищается при каждом Refresh и откатывается при неудачной мутации
type AdminCalendar struct {
	api     CalendarAPI
	overlay *calendar.Overlay
	log     Logger

	mu       sync.RWMutex
	from, to time.Time
	slots    []domain.TimeSlot
	snapshot calendar.Snapshot
}

func NewAdminCalendar(api CalendarAPI, log Logger) *AdminCalendar {
	return &AdminCalendar{
		api:     api,
		overlay: calendar.NewOverlay(),
		log:     log,
	}
}

// Refresh загружает авторитетное состояние за [from, to) и сбрасывает оверлей
func (a *AdminCalendar) Refresh(ctx context.Context, from, to time.Time) error {
	resp, err := a.api.GetCalendar(ctx, from, to)
	if err != nil {
		return err
	}

	slots, snapshot := fromCalendar(resp)

	a.mu.Lock()
	a.from, a.to = from, to
	a.slots = slots
	a.snapshot = snapshot
	a.overlay.Reset()
	a.mu.Unlock()

	a.log.Info("AdminCalendar: refreshed %s - %s, slots=%d", resp.From, resp.To, len(slots))
	return nil
}

// Views статусы слотов с учетом оверлея
func (a *AdminCalendar) Views(now time.Time) []calendar.SlotView {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return calendar.Project(a.slots, a.snapshot, a.overlay, now)
}

// Block сразу показывает слот заблокированным и создает блокировку на сервере
func (a *AdminCalendar) Block(ctx context.Context, slot domain.TimeSlot, reason string) (*BlockedSlot, error) {
	rollback := a.overlay.MarkBlocked(slot)

	created, err := a.api.CreateBlockedSlot(ctx, slot.Start, slot.End(), reason)
	if err != nil {
		rollback()
		a.log.Warn("AdminCalendar: failed to block slot %s, rolled back: %v", slot.Start, err)
		return nil, err
	}
	return created, nil
}

// Unblock сразу показывает свободными все слоты блокировки, покрывающей slot, и удаляет ее на сервере
// Блокировка ищется в последнем загруженном снимке
func (a *AdminCalendar) Unblock(ctx context.Context, slot domain.TimeSlot) error {
	a.mu.RLock()
	var target *domain.BlockedTimeSlot
	for _, b := range a.snapshot.BlockedSlots {
		if b.Covers(slot) {
			target = b
			break
		}
	}
	var covered []domain.TimeSlot
	if target != nil {
		for _, s := range a.slots {
			if target.Covers(s) {
				covered = append(covered, s)
			}
		}
	}
	a.mu.RUnlock()

	if target == nil {
		return fmt.Errorf("%w: no blocked slot covers %s", ErrNotFound, slot.Start)
	}

	rollbacks := make([]func(), 0, len(covered))
	for _, s := range covered {
		rollbacks = append(rollbacks, a.overlay.MarkUnblocked(s))
	}

	if err := a.api.DeleteBlockedSlot(ctx, target.ID); err != nil {
		for i := len(rollbacks) - 1; i >= 0; i-- {
			rollbacks[i]()
		}
		a.log.Warn("AdminCalendar: failed to unblock slot %s, rolled back: %v", slot.Start, err)
		return err
	}
	return nil
}

// PendingChanges число слотов с неподтвержденными изменениями
func (a *AdminCalendar) PendingChanges() int {
	return a.overlay.Len()
}

// fromCalendar восстанавливает снимок из ответа сервиса для локальной проекции
func fromCalendar(resp *Calendar) ([]domain.TimeSlot, calendar.Snapshot) {
	slots := make([]domain.TimeSlot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, domain.NewTimeSlot(s.StartTime))
	}

	var snapshot calendar.Snapshot
	for _, b := range resp.BlockedSlots {
		snapshot.BlockedSlots = append(snapshot.BlockedSlots, &domain.BlockedTimeSlot{
			ID:              b.ID,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			Reason:          b.Reason,
			CreatedByUserID: b.CreatedByUserID,
		})
	}
	for _, m := range resp.Meetings {
		snapshot.Meetings = append(snapshot.Meetings, &domain.Meeting{
			ID:               m.ID,
			ScheduledAt:      m.ScheduledAt,
			DurationMinutes:  m.DurationMinutes,
			Status:           domain.MeetingStatus(m.Status),
			HostUserID:       m.HostUserID,
			MeetingRequestID: m.MeetingRequestID,
		})
	}
	for _, r := range resp.PendingRequests {
		selected := make([]domain.TimeSlot, 0, len(r.SelectedTimeSlots))
		for _, start := range r.SelectedTimeSlots {
			selected = append(selected, domain.NewTimeSlot(start))
		}
		snapshot.Requests = append(snapshot.Requests, &domain.MeetingRequest{
			ID:                r.ID,
			Name:              r.Name,
			SelectedTimeSlots: selected,
			Status:            domain.MeetingRequestPending,
		})
	}

	return slots, snapshot
}
