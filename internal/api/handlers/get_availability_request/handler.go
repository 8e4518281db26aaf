package get_availability_request

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	availabilityChecks "github.com/m04kA/SMC-SchedulingService/internal/service/availability_checks"
)

const (
	msgInvalidID = "некорректный ID запроса"
	msgNotFound  = "запрос не найден"
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

// Handle GET /api/v1/availability-requests/{id}
// Успешные ответы не логируются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("GET /availability-requests/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, availabilityChecks.ErrAvailabilityRequestNotFound):
			h.logger.Warn("GET /availability-requests/{id} - Availability request not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /availability-requests/{id} - Failed to get availability request: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
