package update_availability_rules

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	availabilityRules "github.com/m04kA/SMC-SchedulingService/internal/service/availability_rules"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability_rules/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubService struct {
	got *models.UpdateRulesRequest
	err error
}

func (s *stubService) Replace(_ context.Context, req *models.UpdateRulesRequest) (*models.RulesResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.RulesResponse{Timezone: "UTC", Source: models.SourceStored, Days: req.Days}, nil
}

const body = `{"days":[{"weekday":"monday","closed":false,"open":"09:00","close":"17:00"}]}`

func serve(svc AvailabilityRulesService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/availability-rules", strings.NewReader(body))
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Replaced(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.got.Days, 1)
	require.NotNil(t, svc.got.Days[0].Open)
	assert.Equal(t, 9*60, svc.got.Days[0].Open.Minutes())
	assert.Contains(t, rec.Body.String(), `"source":"stored"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "bad time", body: `{"days":[{"weekday":"monday","open":"9am","close":"17:00"}]}`, status: http.StatusBadRequest},
		{name: "invalid rules", body: body, err: fmt.Errorf("%w: overlap", availabilityRules.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "internal", body: body, err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(&stubService{err: tt.err}, tt.body).Code)
		})
	}
}
