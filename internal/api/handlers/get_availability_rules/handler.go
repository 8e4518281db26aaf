package get_availability_rules

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
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

// Handle GET /api/v1/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /availability-rules - Failed to get rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability-rules - Rules retrieved successfully: source=%s", result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
