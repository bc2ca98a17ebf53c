package get_tutor_slots

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
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

// Handle GET /api/v1/tutors/{tutorId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tutorID := mux.Vars(r)["tutorId"]

	result, err := h.service.ListByTutor(r.Context(), tutorID)
	if err != nil {
		h.logger.Error("GET /tutors/{id}/slots - Failed: tutor_id=%s, error=%v", tutorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tutors/{id}/slots - Fetched %d slots: tutor_id=%s", result.Total, tutorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
