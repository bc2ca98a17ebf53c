package create_payment_intent

import (
	"context"
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/payments"
)

// SlotRepository provides access to availability windows.
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error)
}

// TutorRepository provides fresh tutor reads for eligibility and rate.
type TutorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tutor, error)
}

// PaymentGateway creates payment intents at the provider.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*payments.Intent, error)
}

// TokenIssuer mints booking tokens bound to a payment reference.
type TokenIssuer interface {
	Issue(paymentReferenceID, studentID, tutorID string, now time.Time) (string, error)
}

// HoldStore takes short-lived reservation holds. A nil store disables
// holds entirely.
type HoldStore interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the narrow logging interface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
