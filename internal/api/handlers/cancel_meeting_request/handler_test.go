package cancel_meeting_request

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	meetingRequestsService "github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests"
	"github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) Cancel(_ context.Context, id int64) (*models.MeetingRequestResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.MeetingRequestResponse{ID: id, Status: "cancelled"}, nil
}

func serve(svc MeetingRequestService, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/meeting-requests/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	rec := serve(&stubService{}, "9")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.MeetingRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "bad id", id: "x", status: http.StatusBadRequest},
		{name: "not found", id: "9", err: meetingRequestsService.ErrMeetingRequestNotFound, status: http.StatusNotFound},
		{name: "already decided", id: "9", err: meetingRequestsService.ErrInvalidState, status: http.StatusConflict},
		{name: "internal", id: "9", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(&stubService{err: tt.err}, tt.id).Code)
		})
	}
}
