package cancel_meeting_request

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
	msgInvalidState     = "заявка уже обработана"
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

// Handle PATCH /api/v1/admin/meeting-requests/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PATCH /admin/meeting-requests/{id}/cancel - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, meetingRequestsService.ErrMeetingRequestNotFound):
			h.logger.Warn("PATCH /admin/meeting-requests/{id}/cancel - Meeting request not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, meetingRequestsService.ErrInvalidState):
			h.logger.Warn("PATCH /admin/meeting-requests/{id}/cancel - Meeting request is not pending: id=%d", id)
			handlers.RespondConflict(w, msgInvalidState)

		default:
			h.logger.Error("PATCH /admin/meeting-requests/{id}/cancel - Failed to cancel meeting request: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/meeting-requests/{id}/cancel - Meeting request cancelled successfully: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
