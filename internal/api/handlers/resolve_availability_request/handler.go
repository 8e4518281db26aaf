package resolve_availability_request

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	availabilityChecks "github.com/m04kA/SMC-SchedulingService/internal/service/availability_checks"
)

const (
	msgInvalidID       = "некорректный ID запроса"
	msgMissingToken    = "параметр token обязателен"
	msgInvalidToken    = "ссылка недействительна или устарела"
	msgNotFound        = "запрос не найден"
	msgAlreadyResolved = "на запрос уже дан другой ответ"
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

// Handle GET /api/v1/availability-requests/{id}/resolve?token=...
// Повторный переход по той же ссылке возвращает тот же результат
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("GET /availability-requests/{id}/resolve - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		h.logger.Warn("GET /availability-requests/{id}/resolve - Missing token: id=%s", id)
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.service.Resolve(r.Context(), id, token)
	if err != nil {
		switch {
		case errors.Is(err, availabilityChecks.ErrInvalidToken):
			h.logger.Warn("GET /availability-requests/{id}/resolve - Invalid token: id=%s", id)
			handlers.RespondForbidden(w, msgInvalidToken)

		case errors.Is(err, availabilityChecks.ErrAvailabilityRequestNotFound):
			h.logger.Warn("GET /availability-requests/{id}/resolve - Availability request not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availabilityChecks.ErrAlreadyResolved):
			h.logger.Warn("GET /availability-requests/{id}/resolve - Already resolved: id=%s", id)
			handlers.RespondConflict(w, msgAlreadyResolved)

		default:
			h.logger.Error("GET /availability-requests/{id}/resolve - Failed to resolve: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability-requests/{id}/resolve - Availability request resolved: id=%s, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
