package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubBlockedRepo struct {
	slots []*domain.BlockedTimeSlot
	err   error
}

func (s *stubBlockedRepo) ListOverlapping(_ context.Context, _, _ time.Time) ([]*domain.BlockedTimeSlot, error) {
	return s.slots, s.err
}

type stubMeetingRepo struct {
	meetings []*domain.Meeting
	err      error
}

func (s *stubMeetingRepo) ListActiveOverlapping(_ context.Context, _, _ time.Time) ([]*domain.Meeting, error) {
	return s.meetings, s.err
}

type stubRules struct {
	rules domain.AvailabilityRuleSet
	err   error
}

func (s *stubRules) GetRuleSet(_ context.Context) (domain.AvailabilityRuleSet, error) {
	return s.rules, s.err
}

type stubMetrics struct {
	degraded int
	normal   int
}

func (s *stubMetrics) ObserveSlotQuery(degraded bool) {
	if degraded {
		s.degraded++
		return
	}
	s.normal++
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	uc       *UseCase
	blocked  *stubBlockedRepo
	meetings *stubMeetingRepo
	metrics  *stubMetrics
}

func newFixture() *fixture {
	f := &fixture{
		blocked:  &stubBlockedRepo{},
		meetings: &stubMeetingRepo{},
		metrics:  &stubMetrics{},
	}
	rules := &stubRules{rules: domain.DefaultAvailabilityRuleSet()}
	f.uc = NewUseCase(f.blocked, f.meetings, rules, f.metrics, time.UTC, 28, logger.Nop())
	f.uc.timeProvider = fixedTime{now: time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC)}
	return f
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_MondayHasTwentySixSlots(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{From: date(2024, 1, 1), To: date(2024, 1, 2)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 26)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), resp.Slots[0].Start)
	assert.Equal(t, time.Date(2024, 1, 1, 20, 30, 0, 0, time.UTC), resp.Slots[25].Start)
	assert.False(t, resp.Degraded)
	assert.Equal(t, 1, f.metrics.normal)
}

func TestExecute_WeekRespectsRules(t *testing.T) {
	f := newFixture()

	// 2024-01-01 понедельник, неделя до следующего понедельника
	resp, err := f.uc.Execute(context.Background(), &Request{From: date(2024, 1, 1), To: date(2024, 1, 8)})
	require.NoError(t, err)

	// 5 полных дней (пн-чт, вс) по 26 слотов + пятница 10 слотов
	assert.Len(t, resp.Slots, 5*26+10)

	for _, slot := range resp.Slots {
		assert.Contains(t, []int{0, 30}, slot.Start.Minute())
		assert.NotEqual(t, time.Saturday, slot.Start.Weekday())
		if slot.Start.Weekday() == time.Friday {
			assert.Less(t, slot.Start.Hour(), 13)
			assert.False(t, slot.End().After(time.Date(2024, 1, 5, 13, 0, 0, 0, time.UTC)))
		}
	}
}

func TestExecute_BlockedSlotRemovesExactlyOneCandidate(t *testing.T) {
	f := newFixture()
	f.blocked.slots = []*domain.BlockedTimeSlot{{
		ID:        1,
		StartTime: time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 3, 14, 30, 0, 0, time.UTC),
	}}

	resp, err := f.uc.Execute(context.Background(), &Request{From: date(2024, 1, 3), To: date(2024, 1, 4)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 25)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Overlaps(f.blocked.slots[0].StartTime, f.blocked.slots[0].EndTime))
	}
	assert.Equal(t, 13, resp.Slots[11].Start.Hour())
	assert.Equal(t, 30, resp.Slots[11].Start.Minute())
	assert.Equal(t, time.Date(2024, 1, 3, 14, 30, 0, 0, time.UTC), resp.Slots[12].Start)
}

func TestExecute_MeetingsFilterOnlyWhenActive(t *testing.T) {
	f := newFixture()
	f.meetings.meetings = []*domain.Meeting{
		{ID: 1, ScheduledAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 60, Status: domain.MeetingStatusScheduled},
		{ID: 2, ScheduledAt: time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC), DurationMinutes: 30, Status: domain.MeetingStatusCancelled},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{From: date(2024, 1, 1), To: date(2024, 1, 2)})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 24)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Start.Hour() == 10)
	}
}

func TestExecute_DegradesWhenConflictSourceFails(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{name: "blocked slots", setup: func(f *fixture) { f.blocked.err = errors.New("connection refused") }},
		{name: "meetings", setup: func(f *fixture) { f.meetings.err = errors.New("connection refused") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.blocked.slots = []*domain.BlockedTimeSlot{{
				StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC),
			}}
			tt.setup(f)

			resp, err := f.uc.Execute(context.Background(), &Request{From: date(2024, 1, 1), To: date(2024, 1, 2)})
			require.NoError(t, err)

			assert.True(t, resp.Degraded)
			assert.Len(t, resp.Slots, 26)
			assert.Equal(t, 1, f.metrics.degraded)
		})
	}
}

func TestExecute_Idempotent(t *testing.T) {
	f := newFixture()
	req := &Request{From: date(2024, 1, 1), To: date(2024, 1, 15)}

	first, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_DropsPastSlots(t *testing.T) {
	f := newFixture()
	f.uc.timeProvider = fixedTime{now: time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC)}

	resp, err := f.uc.Execute(context.Background(), &Request{From: date(2024, 1, 1), To: date(2024, 1, 2)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, 20, resp.Slots[0].Start.Hour())
	assert.Equal(t, 30, resp.Slots[0].Start.Minute())
}

func TestExecute_RuleLoadFailureFallsBackToDefault(t *testing.T) {
	f := newFixture()
	f.uc.rules = &stubRules{err: errors.New("table missing")}

	resp, err := f.uc.Execute(context.Background(), &Request{From: date(2024, 1, 1), To: date(2024, 1, 2)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 26)
}

func TestExecute_UsesScheduleTimezone(t *testing.T) {
	f := newFixture()
	loc := time.FixedZone("UTC+3", 3*3600)
	f.uc.location = loc

	resp, err := f.uc.Execute(context.Background(), &Request{From: date(2024, 1, 1), To: date(2024, 1, 2)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 26)
	assert.Equal(t, time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC), resp.Slots[0].Start.UTC())
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "missing dates", req: &Request{}, wantErr: ErrInvalidInput},
		{name: "equal dates", req: &Request{From: date(2024, 1, 1), To: date(2024, 1, 1)}, wantErr: ErrInvalidInput},
		{name: "reversed", req: &Request{From: date(2024, 1, 5), To: date(2024, 1, 1)}, wantErr: ErrInvalidInput},
		{name: "too long", req: &Request{From: date(2024, 1, 1), To: date(2024, 3, 1)}, wantErr: ErrRangeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
