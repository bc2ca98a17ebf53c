package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/middleware"
	createPaymentIntent "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/create_payment_intent"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user identifier"
	msgSlotNotFound       = "availability slot not found"
	msgTutorNotFound      = "tutor not found"
	msgTutorNotEligible   = "tutor is not accepting bookings"
	msgInvalidRange       = "requested range does not fit inside the slot"
	msgSlotHeld           = "this time range is being booked by someone else"
	msgInvalidInput       = "invalid request data"
	msgGatewayError       = "payment provider is unavailable"
)

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/intent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/intent - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/intent - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Create(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createPaymentIntent.ErrSlotNotFound):
			h.logger.Warn("POST /payments/intent - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createPaymentIntent.ErrTutorNotFound):
			h.logger.Warn("POST /payments/intent - Tutor not found: tutor_id=%s", req.TutorID)
			handlers.RespondNotFound(w, msgTutorNotFound)

		case errors.Is(err, createPaymentIntent.ErrTutorNotEligible):
			h.logger.Warn("POST /payments/intent - Tutor not eligible: tutor_id=%s", req.TutorID)
			handlers.RespondConflict(w, msgTutorNotEligible)

		case errors.Is(err, createPaymentIntent.ErrSlotHeld):
			h.logger.Warn("POST /payments/intent - Slot held: slot_id=%s, user_id=%s", req.SlotID, userID)
			handlers.RespondConflict(w, msgSlotHeld)

		case errors.Is(err, createPaymentIntent.ErrInvalidRange):
			h.logger.Warn("POST /payments/intent - Invalid range: slot_id=%s, %d-%d", req.SlotID, req.StartMinutes, req.EndMinutes)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createPaymentIntent.ErrInvalidInput):
			h.logger.Warn("POST /payments/intent - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createPaymentIntent.ErrGateway):
			h.logger.Error("POST /payments/intent - Gateway error: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayError)

		default:
			h.logger.Error("POST /payments/intent - Failed: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/intent - Created: intent_id=%s, user_id=%s", result.IntentID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
