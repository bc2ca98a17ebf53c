package confirm_session

import (
	"context"
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/meetings"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/payments"
)

// SessionRepository persists confirmed sessions and answers idempotency
// lookups by payment reference.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	GetByPaymentReference(ctx context.Context, paymentReferenceID string) (*domain.Session, error)
}

// TutorRepository provides fresh tutor reads. Freshness matters: approval
// may have been revoked since the payment intent was created.
type TutorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tutor, error)
}

// StudentRepository provides student reads for notification details.
type StudentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Student, error)
}

// PaymentGateway retrieves payment intents from the provider.
type PaymentGateway interface {
	RetrieveIntent(ctx context.Context, id string) (*payments.Intent, error)
}

// TokenVerifier checks booking tokens against the presented triple.
type TokenVerifier interface {
	Verify(token, paymentReferenceID, studentID, tutorID string, now time.Time) error
}

// MeetingScheduler creates the calendar event and sends notifications.
type MeetingScheduler interface {
	CreateMeeting(ctx context.Context, req *meetings.CreateMeetingRequest) (*meetings.MeetingResult, error)
}

// HoldStore releases reservation holds once a confirmation lands. A nil
// store disables holds entirely.
type HoldStore interface {
	Release(ctx context.Context, key string) error
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
