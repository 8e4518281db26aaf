package confirm_meeting_request

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	meetingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting"
	meetingRequestRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting_request"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

// store хранилище в памяти с откатом при ошибке транзакции
type store struct {
	requests map[int64]domain.MeetingRequest
	meetings []domain.Meeting
	blocked  []domain.BlockedTimeSlot
	// blockedErr ошибка чтения блокировок
	blockedErr error

	// skipOverlapCheck имитирует гонку: повторная проверка ничего не видит, срабатывает constraint
	skipOverlapCheck bool
	commitErr        error
}

func newStore(requests ...domain.MeetingRequest) *store {
	s := &store{requests: make(map[int64]domain.MeetingRequest)}
	for _, r := range requests {
		s.requests[r.ID] = r
	}
	return s
}

func (s *store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	requests := make(map[int64]domain.MeetingRequest, len(s.requests))
	for id, r := range s.requests {
		requests[id] = r
	}
	meetings := append([]domain.Meeting(nil), s.meetings...)

	err := fn(ctx)
	if err == nil {
		err = s.commitErr
	}
	if err != nil {
		s.requests = requests
		s.meetings = meetings
	}
	return err
}

func (s *store) GetByID(ctx context.Context, id int64) (*domain.MeetingRequest, error) {
	r, ok := s.requests[id]
	if !ok {
		return nil, meetingRequestRepo.ErrMeetingRequestNotFound
	}
	return &r, nil
}

func (s *store) UpdateStatus(ctx context.Context, id int64, from, to domain.MeetingRequestStatus, confirmedSlot *time.Time) (*domain.MeetingRequest, error) {
	r, ok := s.requests[id]
	if !ok || r.Status != from {
		return nil, meetingRequestRepo.ErrStatusChanged
	}
	r.Status = to
	if confirmedSlot != nil {
		slot := domain.NewTimeSlot(*confirmedSlot)
		r.ConfirmedSlot = &slot
	}
	s.requests[id] = r
	return &r, nil
}

func (s *store) HasActiveOverlap(ctx context.Context, from, to time.Time) (bool, error) {
	if s.skipOverlapCheck {
		return false, nil
	}
	return s.overlaps(from, to), nil
}

func (s *store) Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	if s.overlaps(meeting.ScheduledAt, meeting.EndsAt()) {
		return nil, meetingRepo.ErrSlotOccupied
	}
	meeting.ID = int64(len(s.meetings) + 1)
	s.meetings = append(s.meetings, *meeting)
	return meeting, nil
}

func (s *store) ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.BlockedTimeSlot, error) {
	if s.blockedErr != nil {
		return nil, s.blockedErr
	}
	result := make([]*domain.BlockedTimeSlot, 0)
	for i := range s.blocked {
		if domain.Overlaps(s.blocked[i].StartTime, s.blocked[i].EndTime, from, to) {
			result = append(result, &s.blocked[i])
		}
	}
	return result, nil
}

func (s *store) overlaps(from, to time.Time) bool {
	for i := range s.meetings {
		m := s.meetings[i]
		if m.IsActive() && domain.Overlaps(m.ScheduledAt, m.EndsAt(), from, to) {
			return true
		}
	}
	return false
}

type stubNotifier struct {
	confirmed []string
	err       error
}

func (n *stubNotifier) MeetingRequestConfirmed(ctx context.Context, req *domain.MeetingRequest, meeting *domain.Meeting) error {
	n.confirmed = append(n.confirmed, fmt.Sprintf("%d:%s", req.ID, meeting.JoinReference))
	return n.err
}

type stubMetrics struct {
	transitions []string
	failures    []string
}

func (m *stubMetrics) RecordTransition(status string)         { m.transitions = append(m.transitions, status) }
func (m *stubMetrics) RecordNotificationFailure(event string) { m.failures = append(m.failures, event) }

var (
	sharedSlot = time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	otherSlot  = time.Date(2024, 1, 5, 11, 0, 0, 0, time.UTC)
)

func pendingRequest(id int64, starts ...time.Time) domain.MeetingRequest {
	slots := make([]domain.TimeSlot, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, domain.NewTimeSlot(s))
	}
	return domain.MeetingRequest{ID: id, Name: "R", Status: domain.MeetingRequestPending, SelectedTimeSlots: slots}
}

func newUseCase(s *store, notifier *stubNotifier, metrics *stubMetrics) *UseCase {
	return NewUseCase(s, s, s, s, notifier, metrics, logger.Nop())
}

func TestUseCase_Execute_ConfirmOnce(t *testing.T) {
	s := newStore(pendingRequest(1, sharedSlot, otherSlot))
	notifier := &stubNotifier{}
	metrics := &stubMetrics{}

	resp, err := newUseCase(s, notifier, metrics).Execute(context.Background(), &Request{RequestID: 1, Slot: otherSlot, AdminUserID: 9})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, otherSlot, resp.ConfirmedSlot)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.NotEmpty(t, resp.JoinReference)

	stored := s.requests[1]
	assert.Equal(t, domain.MeetingRequestConfirmed, stored.Status)
	require.NotNil(t, stored.ConfirmedSlot)
	assert.True(t, stored.ConfirmedSlot.Start.Equal(otherSlot))

	require.Len(t, s.meetings, 1)
	m := s.meetings[0]
	assert.Equal(t, resp.MeetingID, m.ID)
	assert.True(t, m.ScheduledAt.Equal(otherSlot))
	assert.Equal(t, 30, m.DurationMinutes)
	assert.Equal(t, domain.MeetingStatusScheduled, m.Status)
	assert.Equal(t, int64(9), m.HostUserID)
	require.NotNil(t, m.MeetingRequestID)
	assert.Equal(t, int64(1), *m.MeetingRequestID)

	assert.Equal(t, []string{"1:" + resp.JoinReference}, notifier.confirmed)
	assert.Equal(t, []string{"confirmed"}, metrics.transitions)
}

func TestUseCase_Execute_SlotNotSelected(t *testing.T) {
	s := newStore(pendingRequest(1, sharedSlot))
	notifier := &stubNotifier{}

	_, err := newUseCase(s, notifier, &stubMetrics{}).Execute(context.Background(), &Request{RequestID: 1, Slot: otherSlot})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	assert.Equal(t, domain.MeetingRequestPending, s.requests[1].Status)
	assert.Nil(t, s.requests[1].ConfirmedSlot)
	assert.Empty(t, s.meetings)
	assert.Empty(t, notifier.confirmed)
}

func TestUseCase_Execute_NotPending(t *testing.T) {
	for _, status := range []domain.MeetingRequestStatus{domain.MeetingRequestConfirmed, domain.MeetingRequestCancelled} {
		t.Run(string(status), func(t *testing.T) {
			req := pendingRequest(1, sharedSlot)
			req.Status = status
			s := newStore(req)

			_, err := newUseCase(s, &stubNotifier{}, &stubMetrics{}).Execute(context.Background(), &Request{RequestID: 1, Slot: sharedSlot})
			assert.ErrorIs(t, err, ErrInvalidState)
			assert.Equal(t, status, s.requests[1].Status)
			assert.Empty(t, s.meetings)
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	_, err := newUseCase(newStore(), &stubNotifier{}, &stubMetrics{}).Execute(context.Background(), &Request{RequestID: 5, Slot: sharedSlot})
	assert.ErrorIs(t, err, ErrMeetingRequestNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newUseCase(newStore(), &stubNotifier{}, &stubMetrics{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 0, Slot: sharedSlot})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RequestID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Две заявки предлагают один и тот же момент: второе подтверждение на него отклоняется,
// вторая заявка остается pending и может быть подтверждена на другой слот
func TestUseCase_Execute_SharedSlot(t *testing.T) {
	s := newStore(pendingRequest(1, sharedSlot), pendingRequest(2, sharedSlot, otherSlot))
	uc := newUseCase(s, &stubNotifier{}, &stubMetrics{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 1, Slot: sharedSlot})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{RequestID: 2, Slot: sharedSlot})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, domain.MeetingRequestPending, s.requests[2].Status)
	assert.Len(t, s.meetings, 1)

	_, err = uc.Execute(context.Background(), &Request{RequestID: 2, Slot: otherSlot})
	require.NoError(t, err)
	assert.Len(t, s.meetings, 2)
}

func TestUseCase_Execute_ConstraintBackstop(t *testing.T) {
	s := newStore(pendingRequest(1, sharedSlot), pendingRequest(2, sharedSlot))
	uc := newUseCase(s, &stubNotifier{}, &stubMetrics{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 1, Slot: sharedSlot})
	require.NoError(t, err)

	s.skipOverlapCheck = true
	_, err = uc.Execute(context.Background(), &Request{RequestID: 2, Slot: sharedSlot})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, domain.MeetingRequestPending, s.requests[2].Status)
	assert.Len(t, s.meetings, 1)
}

func TestUseCase_Execute_SerializationFailure(t *testing.T) {
	s := newStore(pendingRequest(1, sharedSlot))
	s.commitErr = fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"})
	notifier := &stubNotifier{}

	_, err := newUseCase(s, notifier, &stubMetrics{}).Execute(context.Background(), &Request{RequestID: 1, Slot: sharedSlot})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.Equal(t, domain.MeetingRequestPending, s.requests[1].Status)
	assert.Empty(t, s.meetings)
	assert.Empty(t, notifier.confirmed)
}

func TestUseCase_Execute_NotificationFailureIsNotFatal(t *testing.T) {
	s := newStore(pendingRequest(1, sharedSlot))
	metrics := &stubMetrics{}

	resp, err := newUseCase(s, &stubNotifier{err: errors.New("broker down")}, metrics).Execute(context.Background(), &Request{RequestID: 1, Slot: sharedSlot})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, []string{"meeting_request.confirmed"}, metrics.failures)
}

func TestUseCase_Execute_BlockedSlot(t *testing.T) {
	tests := []struct {
		name  string
		block domain.BlockedTimeSlot
		want  error
	}{
		{
			name:  "block covers slot",
			block: domain.BlockedTimeSlot{ID: 3, StartTime: sharedSlot.Add(-time.Hour), EndTime: sharedSlot.Add(time.Hour)},
			want:  ErrSlotBlocked,
		},
		{
			name:  "block overlaps slot start",
			block: domain.BlockedTimeSlot{ID: 3, StartTime: sharedSlot.Add(15 * time.Minute), EndTime: sharedSlot.Add(time.Hour)},
			want:  ErrSlotBlocked,
		},
		{
			name:  "block ends at slot start",
			block: domain.BlockedTimeSlot{ID: 3, StartTime: sharedSlot.Add(-time.Hour), EndTime: sharedSlot},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(pendingRequest(1, sharedSlot))
			s.blocked = []domain.BlockedTimeSlot{tt.block}
			notifier := &stubNotifier{}

			_, err := newUseCase(s, notifier, &stubMetrics{}).Execute(context.Background(), &Request{RequestID: 1, Slot: sharedSlot})
			if tt.want == nil {
				require.NoError(t, err)
				assert.Len(t, s.meetings, 1)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, domain.MeetingRequestPending, s.requests[1].Status)
			assert.Empty(t, s.meetings)
			assert.Empty(t, notifier.confirmed)
		})
	}
}

func TestUseCase_Execute_BlockedLookupError(t *testing.T) {
	s := newStore(pendingRequest(1, sharedSlot))
	s.blockedErr = errors.New("db down")

	_, err := newUseCase(s, &stubNotifier{}, &stubMetrics{}).Execute(context.Background(), &Request{RequestID: 1, Slot: sharedSlot})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, s.meetings)
}
