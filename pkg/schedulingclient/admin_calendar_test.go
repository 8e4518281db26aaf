package schedulingclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubCalendarAPI struct {
	calendar  *Calendar
	createErr error
	deleteErr error
	deleted   []int64
	created   int
}

func (s *stubCalendarAPI) GetCalendar(context.Context, time.Time, time.Time) (*Calendar, error) {
	return s.calendar, nil
}

func (s *stubCalendarAPI) CreateBlockedSlot(_ context.Context, start, end time.Time, reason string) (*BlockedSlot, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created++
	return &BlockedSlot{ID: 100, StartTime: start, EndTime: end, Reason: reason}, nil
}

func (s *stubCalendarAPI) DeleteBlockedSlot(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

var (
	calDay = time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)
	at10   = calDay.Add(10 * time.Hour)
	at1030 = at10.Add(30 * time.Minute)
	at11   = at10.Add(time.Hour)
	now    = calDay.Add(-24 * time.Hour)
)

// Три слота 10:00, 10:30, 11:00; 10:00-11:00 заблокировано, на 11:00 ожидают две заявки
func testCalendar() *Calendar {
	return &Calendar{
		From: "2030-03-04",
		To:   "2030-03-05",
		Slots: []CalendarSlot{
			{StartTime: at10}, {StartTime: at1030}, {StartTime: at11},
		},
		BlockedSlots: []BlockedSlot{{ID: 7, StartTime: at10, EndTime: at11}},
		PendingRequests: []PendingRequest{
			{ID: 1, SelectedTimeSlots: []time.Time{at11}},
			{ID: 2, SelectedTimeSlots: []time.Time{at11, at1030}},
		},
	}
}

func statuses(views []calendar.SlotView) []calendar.SlotStatus {
	out := make([]calendar.SlotStatus, 0, len(views))
	for _, v := range views {
		out = append(out, v.Status)
	}
	return out
}

func newRefreshed(t *testing.T, api *stubCalendarAPI) *AdminCalendar {
	t.Helper()
	cal := NewAdminCalendar(api, logger.Nop())
	require.NoError(t, cal.Refresh(context.Background(), calDay, calDay.AddDate(0, 0, 1)))
	return cal
}

func TestAdminCalendar_RefreshProjectsSnapshot(t *testing.T) {
	cal := newRefreshed(t, &stubCalendarAPI{calendar: testCalendar()})

	views := cal.Views(now)

	assert.Equal(t, []calendar.SlotStatus{calendar.StatusBlocked, calendar.StatusBlocked, calendar.StatusPending}, statuses(views))
	assert.Equal(t, 2, views[2].PendingCount)
	// 10:30 заблокирован, но счетчик ожидающих заполнен
	assert.Equal(t, 1, views[1].PendingCount)
}

func TestAdminCalendar_BlockIsVisibleImmediately(t *testing.T) {
	api := &stubCalendarAPI{calendar: testCalendar()}
	cal := newRefreshed(t, api)

	_, err := cal.Block(context.Background(), domain.NewTimeSlot(at11), "call")
	require.NoError(t, err)

	views := cal.Views(now)
	assert.Equal(t, calendar.StatusBlocked, views[2].Status)
	assert.True(t, views[2].Provisional)
	assert.Equal(t, 1, cal.PendingChanges())

	// Авторитетная загрузка полностью заменяет оверлей
	require.NoError(t, cal.Refresh(context.Background(), calDay, calDay.AddDate(0, 0, 1)))
	assert.Equal(t, 0, cal.PendingChanges())
	assert.Equal(t, calendar.StatusPending, cal.Views(now)[2].Status)
}

func TestAdminCalendar_BlockFailureRollsBack(t *testing.T) {
	api := &stubCalendarAPI{calendar: testCalendar(), createErr: errors.New("network")}
	cal := newRefreshed(t, api)

	_, err := cal.Block(context.Background(), domain.NewTimeSlot(at11), "call")

	require.Error(t, err)
	assert.Equal(t, 0, cal.PendingChanges())
	assert.Equal(t, calendar.StatusPending, cal.Views(now)[2].Status)
}

func TestAdminCalendar_UnblockWholeInterval(t *testing.T) {
	api := &stubCalendarAPI{calendar: testCalendar()}
	cal := newRefreshed(t, api)

	require.NoError(t, cal.Unblock(context.Background(), domain.NewTimeSlot(at1030)))

	assert.Equal(t, []int64{7}, api.deleted)
	views := cal.Views(now)
	assert.Equal(t, calendar.StatusAvailable, views[0].Status)
	assert.True(t, views[0].Provisional)
	assert.Equal(t, calendar.StatusPending, views[1].Status)
}

func TestAdminCalendar_UnblockFailureRollsBack(t *testing.T) {
	api := &stubCalendarAPI{calendar: testCalendar(), deleteErr: ErrConflict}
	cal := newRefreshed(t, api)

	err := cal.Unblock(context.Background(), domain.NewTimeSlot(at10))

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 0, cal.PendingChanges())
	assert.Equal(t, calendar.StatusBlocked, cal.Views(now)[0].Status)
}

func TestAdminCalendar_UnblockWithoutBlock(t *testing.T) {
	cal := newRefreshed(t, &stubCalendarAPI{calendar: testCalendar()})

	err := cal.Unblock(context.Background(), domain.NewTimeSlot(at11))

	assert.ErrorIs(t, err, ErrNotFound)
}
