package create_meeting_request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createMeetingRequest "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_meeting_request"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubUseCase struct {
	got  *createMeetingRequest.Request
	resp *createMeetingRequest.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createMeetingRequest.Request) (*createMeetingRequest.Response, error) {
	s.got = req
	return s.resp, s.err
}

const validBody = `{
	"name": "Ann",
	"email": "ann@example.com",
	"phone": "+1 555 0100",
	"selectedTimeSlots": ["2030-03-04T10:00:00Z", "2030-03-04T10:30:00Z"]
}`

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/meeting-requests", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	slot := time.Date(2030, 3, 4, 10, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &createMeetingRequest.Response{
		ID:                5,
		Name:              "Ann",
		Email:             "ann@example.com",
		Phone:             "+1 555 0100",
		SelectedTimeSlots: []time.Time{slot},
		Status:            "pending",
	}}

	rec := serve(NewHandler(uc, logger.Nop()), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "Ann", uc.got.Name)
	assert.Len(t, uc.got.SelectedTimeSlots, 2)

	var resp MeetingRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, slot.Equal(resp.SelectedTimeSlots[0]))
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "malformed json", body: `{"name":`, status: http.StatusBadRequest},
		{name: "unknown field", body: `{"nickname":"x"}`, status: http.StatusBadRequest},
		{name: "validation", body: validBody, err: fmt.Errorf("%w: email", createMeetingRequest.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "internal", body: validBody, err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubUseCase{err: tt.err}, logger.Nop()), tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
