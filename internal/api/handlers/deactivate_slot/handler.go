package deactivate_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/middleware"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/availability"
)

const (
	msgMissingUserID = "missing user identifier"
	msgSlotNotFound  = "availability slot not found"
	msgForbidden     = "access denied"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/slots/{slotId}/deactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /slots/{id}/deactivate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Deactivate(r.Context(), slotID, userID); err != nil {
		switch {
		case errors.Is(err, availability.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/{id}/deactivate - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PATCH /slots/{id}/deactivate - Access denied: slot_id=%s, user_id=%s", slotID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /slots/{id}/deactivate - Failed: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{id}/deactivate - Deactivated: slot_id=%s, user_id=%s", slotID, userID)
	w.WriteHeader(http.StatusNoContent)
}
