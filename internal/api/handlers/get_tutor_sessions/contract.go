package get_tutor_sessions

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/sessions/models"
)

type SessionService interface {
	GetTutorSessions(ctx context.Context, tutorID string, userID string) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
