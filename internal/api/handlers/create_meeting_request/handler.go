package create_meeting_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createMeetingRequest "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_meeting_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации заявки"
)

type Handler struct {
	useCase CreateMeetingRequestUseCase
	logger  Logger
}

func NewHandler(useCase CreateMeetingRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/meeting-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body CreateMeetingRequestBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /meeting-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), body.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createMeetingRequest.ErrInvalidInput):
			h.logger.Warn("POST /meeting-requests - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed+": "+err.Error())

		default:
			h.logger.Error("POST /meeting-requests - Failed to create meeting request: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /meeting-requests - Meeting request created successfully: id=%d, slots=%d",
		result.ID, len(result.SelectedTimeSlots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
