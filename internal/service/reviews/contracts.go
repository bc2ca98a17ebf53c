package reviews

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// ReviewRepository is the review storage interface this service needs.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByTutorID(ctx context.Context, tutorID string) ([]*domain.Review, error)
	GetAverageRating(ctx context.Context, tutorID string) (float64, error)
}

// SessionRepository verifies the reviewer actually had sessions with the
// tutor.
type SessionRepository interface {
	GetByStudentID(ctx context.Context, studentID string) ([]*domain.Session, error)
}

// Logger is the narrow logging interface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
