package get_student_sessions

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

// Handle GET /api/v1/students/{studentId}/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /students/{id}/sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetStudentSessions(r.Context(), studentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("GET /students/{id}/sessions - Access denied: student_id=%s, user_id=%s", studentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /students/{id}/sessions - Failed: student_id=%s, error=%v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /students/{id}/sessions - Fetched %d sessions: student_id=%s", result.Total, studentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
