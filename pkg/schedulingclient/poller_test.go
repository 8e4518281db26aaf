package schedulingclient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

// scriptedGetter отдает ответы по очереди, последний повторяется
type scriptedGetter struct {
	mu    sync.Mutex
	steps []step
	calls int
}

type step struct {
	status  string
	expired bool
	err     error
}

func (g *scriptedGetter) GetAvailabilityRequest(_ context.Context, id uuid.UUID) (*AvailabilityRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.steps[len(g.steps)-1]
	if g.calls < len(g.steps) {
		s = g.steps[g.calls]
	}
	g.calls++

	if s.err != nil {
		return nil, s.err
	}
	return &AvailabilityRequest{ID: id, Status: s.status, Expired: s.expired}, nil
}

func (g *scriptedGetter) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func newTestPoller(g StatusGetter, timeout time.Duration) *Poller {
	return NewPoller(g, 5*time.Millisecond, timeout, logger.Nop())
}

func TestPoller_Available(t *testing.T) {
	g := &scriptedGetter{steps: []step{{status: "pending"}, {status: "pending"}, {status: "available"}}}

	outcome, err := newTestPoller(g, time.Second).Wait(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, OutcomeAvailable, outcome)
	assert.False(t, outcome.FallsThrough())
	assert.Equal(t, 3, g.Calls())
}

func TestPoller_Unavailable(t *testing.T) {
	g := &scriptedGetter{steps: []step{{status: "unavailable"}}}

	outcome, err := newTestPoller(g, time.Second).Wait(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, OutcomeUnavailable, outcome)
	assert.True(t, outcome.FallsThrough())
}

func TestPoller_Timeout(t *testing.T) {
	g := &scriptedGetter{steps: []step{{status: "pending"}}}

	outcome, err := newTestPoller(g, 30*time.Millisecond).Wait(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, OutcomeTimeout, outcome)
	assert.True(t, outcome.FallsThrough())
}

func TestPoller_ServerSideExpiry(t *testing.T) {
	g := &scriptedGetter{steps: []step{{status: "pending", expired: true}}}

	outcome, err := newTestPoller(g, time.Second).Wait(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, OutcomeTimeout, outcome)
}

func TestPoller_TransientErrorsKeepPolling(t *testing.T) {
	g := &scriptedGetter{steps: []step{{err: ErrInternal}, {err: ErrInvalidResponse}, {status: "available"}}}

	outcome, err := newTestPoller(g, time.Second).Wait(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, OutcomeAvailable, outcome)
}

func TestPoller_NotFoundStops(t *testing.T) {
	g := &scriptedGetter{steps: []step{{err: ErrNotFound}}}

	_, err := newTestPoller(g, time.Second).Wait(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, g.Calls())
}

func TestPoller_Cancelled(t *testing.T) {
	g := &scriptedGetter{steps: []step{{status: "pending"}}}
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	_, err := newTestPoller(g, time.Minute).Wait(ctx, uuid.New())

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewPoller_Defaults(t *testing.T) {
	p := NewPoller(&scriptedGetter{}, 0, 0, logger.Nop())
	assert.Equal(t, DefaultPollInterval, p.interval)
	assert.Equal(t, DefaultPollTimeout, p.timeout)

	p = NewPollerFromHints(&scriptedGetter{}, &AvailabilityRequest{PollIntervalSeconds: 3, TimeoutSeconds: 60}, logger.Nop())
	assert.Equal(t, 3*time.Second, p.interval)
	assert.Equal(t, time.Minute, p.timeout)
}
