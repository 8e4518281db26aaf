package list_blocked_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	blockedSlotsService "github.com/m04kA/SMC-SchedulingService/internal/service/blocked_slots"
)

const (
	msgMissingRange = "параметры from и to обязательны"
	msgInvalidTime  = "некорректный формат времени, ожидается RFC3339"
	msgInvalidRange = "from должен быть раньше to"
)

type Handler struct {
	service BlockedSlotService
	logger  Logger
}

func NewHandler(service BlockedSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/blocked-slots
// Query params: from, to (required, RFC3339) - блокировки, пересекающиеся с [from, to)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /admin/blocked-slots - Missing from or to")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		h.logger.Warn("GET /admin/blocked-slots - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		h.logger.Warn("GET /admin/blocked-slots - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.List(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, blockedSlotsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/blocked-slots - Invalid range: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/blocked-slots - Failed to list blocked slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/blocked-slots - Blocked slots retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
