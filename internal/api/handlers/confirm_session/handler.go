package confirm_session

import (
	"errors"
	"net/http"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/middleware"
	confirmSession "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/confirm_session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user identifier"
	msgPaymentNotFound    = "payment not found"
	msgPaymentIncomplete  = "payment has not completed"
	msgAuthMismatch       = "you are not a party to this payment"
	msgInvalidToken       = "invalid booking token"
	msgEntityNotFound     = "tutor or student not found"
	msgTutorNotEligible   = "tutor is not accepting bookings"
	msgInvalidInput       = "invalid request data"
)

type Handler struct {
	useCase ConfirmSessionUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Confirm(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, confirmSession.ErrPaymentNotFound):
			h.logger.Warn("POST /booking/confirm - Payment not found: ref=%s", req.PaymentReferenceID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, confirmSession.ErrPaymentNotCompleted):
			h.logger.Warn("POST /booking/confirm - Payment not completed: ref=%s", req.PaymentReferenceID)
			handlers.RespondPaymentRequired(w, msgPaymentIncomplete)

		case errors.Is(err, confirmSession.ErrInvalidMetadata):
			h.logger.Warn("POST /booking/confirm - Invalid metadata: ref=%s, error=%v", req.PaymentReferenceID, err)
			handlers.RespondBadRequest(w, msgPaymentNotFound)

		case errors.Is(err, confirmSession.ErrAuthorizationMismatch):
			h.logger.Warn("POST /booking/confirm - Authorization mismatch: ref=%s, user_id=%s", req.PaymentReferenceID, userID)
			handlers.RespondForbidden(w, msgAuthMismatch)

		case errors.Is(err, confirmSession.ErrInvalidToken):
			h.logger.Warn("POST /booking/confirm - Invalid token: ref=%s, user_id=%s", req.PaymentReferenceID, userID)
			handlers.RespondUnauthorized(w, msgInvalidToken)

		case errors.Is(err, confirmSession.ErrEntityNotFound):
			h.logger.Warn("POST /booking/confirm - Entity not found: ref=%s, error=%v", req.PaymentReferenceID, err)
			handlers.RespondNotFound(w, msgEntityNotFound)

		case errors.Is(err, confirmSession.ErrTutorNotEligible):
			h.logger.Warn("POST /booking/confirm - Tutor not eligible: ref=%s, tutor_id=%s", req.PaymentReferenceID, req.TutorID)
			handlers.RespondConflict(w, msgTutorNotEligible)

		case errors.Is(err, confirmSession.ErrInvalidInput):
			h.logger.Warn("POST /booking/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking/confirm - Failed: ref=%s, error=%v", req.PaymentReferenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyConfirmed {
		status = http.StatusOK
	}

	h.logger.Info("POST /booking/confirm - Confirmed: session_id=%s, ref=%s, replay=%t",
		result.SessionID, req.PaymentReferenceID, result.AlreadyConfirmed)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
