package list_meeting_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	meetingRequestsService "github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests"
	"github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests/models"
)

const msgInvalidStatus = "некорректный статус заявки"

type Handler struct {
	service MeetingRequestService
	logger  Logger
}

func NewHandler(service MeetingRequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/meeting-requests
// Query params: status (optional: pending, confirmed, cancelled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListMeetingRequestsRequest{}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, meetingRequestsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/meeting-requests - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/meeting-requests - Failed to list meeting requests: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/meeting-requests - Meeting requests retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
