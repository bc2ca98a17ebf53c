package create_review

import (
	"errors"
	"net/http"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/middleware"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user identifier"
	msgNoCompletedSession = "a completed session with this tutor is required to review"
	msgInvalidInput       = "invalid review data"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	review, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrNoCompletedSession):
			h.logger.Warn("POST /reviews - No completed session: user_id=%s, tutor_id=%s", userID, req.TutorID)
			handlers.RespondForbidden(w, msgNoCompletedSession)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reviews - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%s, tutor_id=%s", review.ID, req.TutorID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
