package create_payment_intent

import (
	"context"

	createPaymentIntent "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/create_payment_intent"
)

type CreatePaymentIntentUseCase interface {
	Create(ctx context.Context, req *createPaymentIntent.Request) (*createPaymentIntent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
