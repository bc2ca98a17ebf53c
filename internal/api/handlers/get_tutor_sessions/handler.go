package get_tutor_sessions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/middleware"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/sessions"
)

const (
	msgMissingUserID = "missing user identifier"
	msgForbidden     = "access denied"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tutors/{tutorId}/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tutorID := mux.Vars(r)["tutorId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /tutors/{id}/sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetTutorSessions(r.Context(), tutorID, userID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("GET /tutors/{id}/sessions - Access denied: tutor_id=%s, user_id=%s", tutorID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /tutors/{id}/sessions - Failed: tutor_id=%s, error=%v", tutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tutors/{id}/sessions - Fetched %d sessions: tutor_id=%s", result.Total, tutorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
