package get_meeting_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	meetingRequestsService "github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests"
)

const (
	msgInvalidRequestID = "некорректный ID заявки"
	msgNotFound         = "заявка не найдена"
)

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

// Handle GET /api/v1/admin/meeting-requests/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("GET /admin/meeting-requests/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, meetingRequestsService.ErrMeetingRequestNotFound):
			h.logger.Warn("GET /admin/meeting-requests/{id} - Meeting request not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/meeting-requests/{id} - Failed to get meeting request: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/meeting-requests/{id} - Meeting request retrieved successfully: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
