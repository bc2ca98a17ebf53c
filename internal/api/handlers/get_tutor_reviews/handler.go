package get_tutor_reviews

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers"
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

// Handle GET /api/v1/tutors/{tutorId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tutorID := mux.Vars(r)["tutorId"]

	result, err := h.service.ListByTutor(r.Context(), tutorID)
	if err != nil {
		h.logger.Error("GET /tutors/{id}/reviews - Failed: tutor_id=%s, error=%v", tutorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tutors/{id}/reviews - Fetched %d reviews: tutor_id=%s", result.Total, tutorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
