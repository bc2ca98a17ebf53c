package sessions

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// SessionRepository is the session storage interface this service needs.
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	GetByStudentID(ctx context.Context, studentID string) ([]*domain.Session, error)
	GetByTutorID(ctx context.Context, tutorID string) ([]*domain.Session, error)
	UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the narrow logging interface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
