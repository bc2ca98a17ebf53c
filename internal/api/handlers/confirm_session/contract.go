package confirm_session

import (
	"context"

	confirmSession "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/confirm_session"
)

type ConfirmSessionUseCase interface {
	Confirm(ctx context.Context, req *confirmSession.Request) (*confirmSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
