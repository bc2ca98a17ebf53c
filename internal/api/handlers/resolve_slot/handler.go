package resolve_slot

import (
	"errors"
	"net/http"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
	resolveSlot "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/resolve_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotNotFound       = "availability slot not found"
	msgSlotInactive       = "availability slot is no longer offered"
	msgInvalidRange       = "requested range does not fit inside the slot"
	msgInvalidInput       = "invalid request data"
)

type Handler struct {
	useCase ResolveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ResolveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResolveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Resolve(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, resolveSlot.ErrSlotNotFound):
			h.logger.Warn("POST /booking/resolve - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, resolveSlot.ErrSlotInactive):
			h.logger.Warn("POST /booking/resolve - Slot inactive: slot_id=%s", req.SlotID)
			handlers.RespondConflict(w, msgSlotInactive)

		case errors.Is(err, resolveSlot.ErrInvalidRange):
			h.logger.Warn("POST /booking/resolve - Invalid range: slot_id=%s, %d-%d", req.SlotID, req.StartMinutes, req.EndMinutes)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, resolveSlot.ErrInvalidInput):
			h.logger.Warn("POST /booking/resolve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking/resolve - Failed: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/resolve - Resolved: slot_id=%s", req.SlotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
