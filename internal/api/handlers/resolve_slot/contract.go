package resolve_slot

import (
	"context"

	resolveSlot "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/resolve_slot"
)

type ResolveSlotUseCase interface {
	Resolve(ctx context.Context, req *resolveSlot.Request) (*resolveSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
