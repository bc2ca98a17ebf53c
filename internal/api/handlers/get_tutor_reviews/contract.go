package get_tutor_reviews

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/reviews/models"
)

type ReviewService interface {
	ListByTutor(ctx context.Context, tutorID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
