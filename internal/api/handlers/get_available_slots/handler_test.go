package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc GetAvailableSlotsUseCase, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	from := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		From: from,
		To:   from.AddDate(0, 0, 1),
		Slots: []domain.TimeSlot{
			domain.NewTimeSlot(from.Add(8 * time.Hour)),
			domain.NewTimeSlot(from.Add(8*time.Hour + 30*time.Minute)),
		},
		Degraded: true,
	}}

	rec := serve(uc, "?from=2030-03-04&to=2030-03-05")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, uc.got.From.Day())
	assert.Equal(t, 5, uc.got.To.Day())

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.True(t, resp.Degraded)
	assert.Equal(t, 30, resp.Slots[0].DurationMinutes)
	assert.True(t, resp.Slots[0].EndTime.Equal(from.Add(8*time.Hour+30*time.Minute)))
}

func TestHandle_NotDegradedOmitsFlag(t *testing.T) {
	from := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &getAvailableSlots.Response{From: from, To: from.AddDate(0, 0, 1), Slots: []domain.TimeSlot{}}}

	rec := serve(uc, "?from=2030-03-04&to=2030-03-05")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "degraded")
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{name: "missing from", query: "?to=2030-03-05", status: http.StatusBadRequest},
		{name: "bad to", query: "?from=2030-03-04&to=tomorrow", status: http.StatusBadRequest},
		{name: "range too large", query: "?from=2030-03-04&to=2031-03-05", err: fmt.Errorf("%w: 28", getAvailableSlots.ErrRangeTooLarge), status: http.StatusBadRequest},
		{name: "reversed", query: "?from=2030-03-05&to=2030-03-04", err: fmt.Errorf("%w: order", getAvailableSlots.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "internal", query: "?from=2030-03-04&to=2030-03-05", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(&stubUseCase{err: tt.err}, tt.query).Code)
		})
	}
}
