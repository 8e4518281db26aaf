package update_availability_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	availabilityRules "github.com/m04kA/SMC-SchedulingService/internal/service/availability_rules"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability_rules/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректное расписание"
)

type Handler struct {
	service AvailabilityRulesService
	logger  Logger
}

func NewHandler(service AvailabilityRulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Replace(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityRules.ErrInvalidInput):
			h.logger.Warn("PUT /admin/availability-rules - Invalid rules: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData+": "+err.Error())

		default:
			h.logger.Error("PUT /admin/availability-rules - Failed to replace rules: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability-rules - Rules replaced successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
