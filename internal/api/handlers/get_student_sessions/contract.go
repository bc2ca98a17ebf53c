package get_student_sessions

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/sessions/models"
)

type SessionService interface {
	GetStudentSessions(ctx context.Context, studentID string, userID string) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
