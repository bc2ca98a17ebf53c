package get_session

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/sessions/models"
)

type SessionService interface {
	GetByID(ctx context.Context, id string, userID string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
