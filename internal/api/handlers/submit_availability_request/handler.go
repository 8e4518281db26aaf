package submit_availability_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	availabilityChecks "github.com/m04kA/SMC-SchedulingService/internal/service/availability_checks"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability_checks/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации контактных данных"
)

type Handler struct {
	service AvailabilityCheckService
	logger  Logger
}

func NewHandler(service AvailabilityCheckService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityChecks.ErrInvalidInput):
			h.logger.Warn("POST /availability-requests - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed+": "+err.Error())

		default:
			h.logger.Error("POST /availability-requests - Failed to submit availability request: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability-requests - Availability request submitted successfully: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
