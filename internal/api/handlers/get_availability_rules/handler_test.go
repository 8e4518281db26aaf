package get_availability_rules

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability_rules/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubService struct {
	resp *models.RulesResponse
	err  error
}

func (s *stubService) Get(context.Context) (*models.RulesResponse, error) {
	return s.resp, s.err
}

func TestHandle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &stubService{resp: &models.RulesResponse{
			Timezone: "UTC",
			Source:   models.SourceDefault,
			Days:     []models.DayRule{{Weekday: "saturday", Closed: true}},
		}}
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability-rules", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.RulesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, models.SourceDefault, resp.Source)
		require.Len(t, resp.Days, 1)
		assert.True(t, resp.Days[0].Closed)
	})

	t.Run("internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(&stubService{err: errors.New("boom")}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
