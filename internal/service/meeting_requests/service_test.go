package meeting_requests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	meetingRequestRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting_request"
	"github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubRepo struct {
	requests map[int64]*domain.MeetingRequest
	// raceTo имитирует параллельный переход между чтением и условным обновлением
	raceTo  domain.MeetingRequestStatus
	listErr error
	filter  domain.MeetingRequestFilter
}

func (r *stubRepo) GetByID(ctx context.Context, id int64) (*domain.MeetingRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, meetingRequestRepo.ErrMeetingRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *stubRepo) List(ctx context.Context, filter domain.MeetingRequestFilter) ([]*domain.MeetingRequest, error) {
	r.filter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []*domain.MeetingRequest
	for _, req := range r.requests {
		if filter.Status == nil || req.Status == *filter.Status {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *stubRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.MeetingRequestStatus, confirmedSlot *time.Time) (*domain.MeetingRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, meetingRequestRepo.ErrMeetingRequestNotFound
	}
	if r.raceTo != "" {
		req.Status = r.raceTo
	}
	if req.Status != from {
		return nil, meetingRequestRepo.ErrStatusChanged
	}
	req.Status = to
	cp := *req
	return &cp, nil
}

type stubNotifier struct {
	cancelled []int64
	err       error
}

func (n *stubNotifier) MeetingRequestCancelled(ctx context.Context, req *domain.MeetingRequest) error {
	n.cancelled = append(n.cancelled, req.ID)
	return n.err
}

type stubMetrics struct {
	transitions []string
	failures    []string
}

func (m *stubMetrics) RecordTransition(status string)         { m.transitions = append(m.transitions, status) }
func (m *stubMetrics) RecordNotificationFailure(event string) { m.failures = append(m.failures, event) }

func fixture() *stubRepo {
	slot := domain.NewTimeSlot(time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC))
	return &stubRepo{requests: map[int64]*domain.MeetingRequest{
		1: {ID: 1, Name: "A", Status: domain.MeetingRequestPending, SelectedTimeSlots: []domain.TimeSlot{slot}},
		2: {ID: 2, Name: "B", Status: domain.MeetingRequestConfirmed, SelectedTimeSlots: []domain.TimeSlot{slot}, ConfirmedSlot: &slot},
		3: {ID: 3, Name: "C", Status: domain.MeetingRequestCancelled, SelectedTimeSlots: []domain.TimeSlot{slot}},
	}}
}

func TestService_Cancel(t *testing.T) {
	repo := fixture()
	notifier := &stubNotifier{}
	metrics := &stubMetrics{}
	svc := NewService(repo, notifier, metrics, logger.Nop())

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, domain.MeetingRequestCancelled, repo.requests[1].Status)
	assert.Equal(t, []int64{1}, notifier.cancelled)
	assert.Equal(t, []string{"cancelled"}, metrics.transitions)
}

func TestService_Cancel_Errors(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		raceTo  domain.MeetingRequestStatus
		wantErr error
	}{
		{name: "not found", id: 42, wantErr: ErrMeetingRequestNotFound},
		{name: "already confirmed", id: 2, wantErr: ErrInvalidState},
		{name: "already cancelled", id: 3, wantErr: ErrInvalidState},
		{name: "confirmed concurrently", id: 1, raceTo: domain.MeetingRequestConfirmed, wantErr: ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := fixture()
			repo.raceTo = tt.raceTo
			notifier := &stubNotifier{}
			svc := NewService(repo, notifier, &stubMetrics{}, logger.Nop())

			_, err := svc.Cancel(context.Background(), tt.id)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, notifier.cancelled)
		})
	}
}

func TestService_Cancel_NotificationFailureIsNotFatal(t *testing.T) {
	repo := fixture()
	metrics := &stubMetrics{}
	svc := NewService(repo, &stubNotifier{err: errors.New("broker down")}, metrics, logger.Nop())

	_, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"meeting_request.cancelled"}, metrics.failures)
}

func TestService_List(t *testing.T) {
	repo := fixture()
	svc := NewService(repo, &stubNotifier{}, &stubMetrics{}, logger.Nop())

	all, err := svc.List(context.Background(), &models.ListMeetingRequestsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	status := "pending"
	pending, err := svc.List(context.Background(), &models.ListMeetingRequestsRequest{Status: &status})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].ID)

	bogus := "archived"
	_, err = svc.List(context.Background(), &models.ListMeetingRequestsRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("boom")
	_, err = svc.List(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(fixture(), &stubNotifier{}, &stubMetrics{}, logger.Nop())

	resp, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, resp.ConfirmedSlot)
	assert.Equal(t, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), *resp.ConfirmedSlot)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMeetingRequestNotFound)
}
