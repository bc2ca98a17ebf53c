package update_tutor_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/tutors"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/tutors/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgTutorNotFound      = "tutor not found"
	msgInvalidStatus      = "invalid tutor status"
)

type Handler struct {
	service TutorService
	logger  Logger
}

func NewHandler(service TutorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tutors/{tutorId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tutorID := mux.Vars(r)["tutorId"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tutors/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), tutorID, &req); err != nil {
		switch {
		case errors.Is(err, tutors.ErrTutorNotFound):
			h.logger.Warn("PATCH /tutors/{id}/status - Tutor not found: tutor_id=%s", tutorID)
			handlers.RespondNotFound(w, msgTutorNotFound)

		case errors.Is(err, tutors.ErrInvalidStatus):
			h.logger.Warn("PATCH /tutors/{id}/status - Invalid status: tutor_id=%s, status=%s", tutorID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /tutors/{id}/status - Failed: tutor_id=%s, error=%v", tutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tutors/{id}/status - Updated: tutor_id=%s, status=%s", tutorID, req.Status)
	w.WriteHeader(http.StatusNoContent)
}
