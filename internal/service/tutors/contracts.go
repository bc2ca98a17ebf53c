package tutors

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// TutorRepository is the tutor storage interface this service needs.
type TutorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tutor, error)
	UpdateStatus(ctx context.Context, id string, status domain.TutorStatus) error
}

// Logger is the narrow logging interface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
