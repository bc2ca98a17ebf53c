package update_session_status

import (
	"context"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/sessions/models"
)

type SessionService interface {
	UpdateStatus(ctx context.Context, sessionID string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
