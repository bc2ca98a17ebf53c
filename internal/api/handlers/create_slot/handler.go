package create_slot

import (
	"errors"
	"net/http"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/middleware"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user identifier"
	msgTutorNotFound      = "tutor not found"
	msgInvalidInput       = "invalid slot data"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrTutorNotFound):
			h.logger.Warn("POST /slots - Tutor not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgTutorNotFound)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created: slot_id=%s, user_id=%s", slot.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
