package confirm_meeting_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	confirmMeetingRequest "github.com/m04kA/SMC-SchedulingService/internal/usecase/confirm_meeting_request"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "заявка не найдена"
	msgInvalidState       = "заявка уже обработана"
	msgInvalidSlot        = "слот не входит в выбранные заявителем"
	msgSlotTaken          = "слот уже занят другой встречей"
	msgSlotBlocked        = "слот закрыт блокировкой"
	msgConcurrentUpdate   = "заявка изменена параллельно, повторите попытку"
)

type Handler struct {
	useCase ConfirmMeetingRequestUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmMeetingRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/meeting-requests/{id}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	id, err := handlers.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var body ConfirmBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Invalid request body: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), body.ToUseCaseRequest(id, adminID))
	if err != nil {
		switch {
		case errors.Is(err, confirmMeetingRequest.ErrMeetingRequestNotFound):
			h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Meeting request not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmMeetingRequest.ErrInvalidState):
			h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Meeting request is not pending: id=%d", id)
			handlers.RespondConflict(w, msgInvalidState)

		case errors.Is(err, confirmMeetingRequest.ErrInvalidSlot):
			h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Slot not selected: id=%d, slot=%s", id, body.Slot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, confirmMeetingRequest.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, confirmMeetingRequest.ErrSlotTaken):
			h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Slot already taken: id=%d, slot=%s", id, body.Slot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, confirmMeetingRequest.ErrSlotBlocked):
			h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Slot is blocked: id=%d, slot=%s", id, body.Slot)
			handlers.RespondConflict(w, msgSlotBlocked)

		case errors.Is(err, confirmMeetingRequest.ErrConcurrentUpdate):
			h.logger.Warn("PATCH /admin/meeting-requests/{id}/confirm - Concurrent update: id=%d", id)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("PATCH /admin/meeting-requests/{id}/confirm - Failed to confirm meeting request: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/meeting-requests/{id}/confirm - Meeting request confirmed successfully: id=%d, meeting_id=%d, slot=%s",
		id, result.MeetingID, result.ConfirmedSlot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
