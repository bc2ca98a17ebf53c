package confirm_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/hold"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/sessions"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/students"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/tutors"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/meetings"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/payments"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/pricing"
)

// UseCase turns a succeeded payment into exactly one persisted session.
//
// The flow deliberately runs without a database transaction: the unique
// constraint on payment_reference_id is the serialization point, and a
// duplicate insert falls back to returning the already-confirmed session.
// Holding a transaction open across the external meeting call would be far
// worse than the benign races this leaves.
type UseCase struct {
	sessionRepo  SessionRepository
	tutorRepo    TutorRepository
	studentRepo  StudentRepository
	gateway      PaymentGateway
	tokens       TokenVerifier
	scheduler    MeetingScheduler
	holds        HoldStore
	timeProvider TimeProvider
	location     *time.Location

	notifyTimeout time.Duration

	log Logger
}

func New(
	sessionRepo SessionRepository,
	tutorRepo TutorRepository,
	studentRepo StudentRepository,
	gateway PaymentGateway,
	tokens TokenVerifier,
	scheduler MeetingScheduler,
	holds HoldStore,
	timeProvider TimeProvider,
	notifyTimeout time.Duration,
	log Logger,
) (*UseCase, error) {
	loc, err := time.LoadLocation(domain.PlatformTimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: load location: %v", ErrInternal, err)
	}

	return &UseCase{
		sessionRepo:   sessionRepo,
		tutorRepo:     tutorRepo,
		studentRepo:   studentRepo,
		gateway:       gateway,
		tokens:        tokens,
		scheduler:     scheduler,
		holds:         holds,
		timeProvider:  timeProvider,
		location:      loc,
		notifyTimeout: notifyTimeout,
		log:           log,
	}, nil
}

func (uc *UseCase) Confirm(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Retrieve the payment from the gateway
	intent, err := uc.gateway.RetrieveIntent(ctx, req.PaymentReferenceID)
	if err != nil {
		if errors.Is(err, payments.ErrIntentNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrPaymentNotFound, req.PaymentReferenceID)
		}
		uc.log.Error("Failed to retrieve intent %s: %v", req.PaymentReferenceID, err)
		return nil, fmt.Errorf("%w: retrieve intent: %v", ErrInternal, err)
	}

	// 3. Only a succeeded payment may confirm
	if intent.Status != payments.StatusSucceeded {
		return nil, fmt.Errorf("%w: status=%s", ErrPaymentNotCompleted, intent.Status)
	}

	// 4. Recover the trusted booking details from intent metadata
	details, err := parseMetadata(intent.Metadata)
	if err != nil {
		return nil, err
	}

	// 5. The presented parties must match the parties recorded on the payment
	if req.TutorID != details.tutorID || req.StudentID != details.studentID {
		return nil, fmt.Errorf("%w: presented tutor=%s student=%s", ErrAuthorizationMismatch, req.TutorID, req.StudentID)
	}

	// 6. Verify the booking token against the triple. The specific failure
	// mode stays in the logs; callers get one opaque error.
	now := uc.timeProvider.Now()
	if err := uc.tokens.Verify(req.BookingToken, req.PaymentReferenceID, req.StudentID, req.TutorID, now); err != nil {
		uc.log.Warn("Booking token rejected for intent %s: %v", req.PaymentReferenceID, err)
		return nil, ErrInvalidToken
	}

	// 7. Idempotency: a session for this payment may already exist
	existing, err := uc.sessionRepo.GetByPaymentReference(ctx, req.PaymentReferenceID)
	if err == nil {
		uc.log.Info("Confirmation replay for intent %s: returning session %s", req.PaymentReferenceID, existing.ID)
		return replayResponse(existing), nil
	}
	if !errors.Is(err, sessions.ErrSessionNotFound) {
		uc.log.Error("Failed idempotency lookup for intent %s: %v", req.PaymentReferenceID, err)
		return nil, fmt.Errorf("%w: idempotency lookup: %v", ErrInternal, err)
	}

	// 8. Fresh party reads; approval must still hold right now
	tutor, err := uc.tutorRepo.GetByID(ctx, req.TutorID)
	if err != nil {
		if errors.Is(err, tutors.ErrTutorNotFound) {
			return nil, fmt.Errorf("%w: tutor id=%s", ErrEntityNotFound, req.TutorID)
		}
		uc.log.Error("Failed to get tutor %s: %v", req.TutorID, err)
		return nil, fmt.Errorf("%w: get tutor: %v", ErrInternal, err)
	}
	if !tutor.IsApproved() {
		return nil, fmt.Errorf("%w: id=%s status=%s", ErrTutorNotEligible, tutor.ID, tutor.Status)
	}

	student, err := uc.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, students.ErrStudentNotFound) {
			return nil, fmt.Errorf("%w: student id=%s", ErrEntityNotFound, req.StudentID)
		}
		uc.log.Error("Failed to get student %s: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: get student: %v", ErrInternal, err)
	}

	// 9. Reprice from the tutor's current rate and the hours recorded on the
	// payment. The stored amounts are what the platform owes on, regardless
	// of what the client claims.
	quote := pricing.Quote(tutor.HourlyRate, details.hours)

	// 10. Create the calendar event and send notifications. This step gets
	// its own timeout and never fails the confirmation.
	session := &domain.Session{
		ID:                 uuid.NewString(),
		TutorID:            tutor.ID,
		StudentID:          student.ID,
		ScheduledStart:     details.startTime,
		DurationHours:      details.hours,
		Subtotal:           quote.Subtotal,
		PlatformFee:        quote.Fee,
		Total:              quote.Total,
		PaymentReferenceID: req.PaymentReferenceID,
		Status:             domain.SessionStatusPending,
	}

	notificationErr := uc.scheduleMeeting(ctx, session, tutor, student, details)

	// 11. Persist. A duplicate payment reference means a concurrent
	// confirmation won the race; return its session.
	created, err := uc.sessionRepo.Create(ctx, session)
	if err != nil {
		if errors.Is(err, sessions.ErrDuplicatePaymentReference) {
			winner, readErr := uc.sessionRepo.GetByPaymentReference(ctx, req.PaymentReferenceID)
			if readErr != nil {
				uc.log.Error("Failed to read winning session for intent %s: %v", req.PaymentReferenceID, readErr)
				return nil, fmt.Errorf("%w: read winning session: %v", ErrInternal, readErr)
			}
			uc.log.Info("Lost confirmation race for intent %s: returning session %s", req.PaymentReferenceID, winner.ID)
			return replayResponse(winner), nil
		}
		uc.log.Error("Failed to create session for intent %s: %v", req.PaymentReferenceID, err)
		return nil, fmt.Errorf("%w: create session: %v", ErrInternal, err)
	}

	// 12. Best-effort hold release; the TTL cleans up after us anyway
	uc.releaseHold(ctx, details)

	uc.log.Info("Confirmed session %s: intent=%s tutor=%s student=%s total=%d",
		created.ID, req.PaymentReferenceID, tutor.ID, student.ID, created.Total)

	resp := replayResponse(created)
	resp.AlreadyConfirmed = false
	resp.NotificationError = notificationErr
	return resp, nil
}

// scheduleMeeting fills the session's meeting fields in place and returns a
// notification error message, empty on success.
func (uc *UseCase) scheduleMeeting(ctx context.Context, session *domain.Session, tutor *domain.Tutor, student *domain.Student, details *paymentDetails) string {
	meetingCtx, cancel := context.WithTimeout(ctx, uc.notifyTimeout)
	defer cancel()

	result, err := uc.scheduler.CreateMeeting(meetingCtx, &meetings.CreateMeetingRequest{
		TutorName:     tutor.Name,
		TutorEmail:    tutor.Email,
		StudentName:   student.Name,
		StudentEmail:  student.Email,
		StartTime:     details.startTime,
		DurationHours: details.hours,
		RequestID:     session.PaymentReferenceID,
	})
	if err != nil {
		uc.log.Warn("Meeting scheduling failed for intent %s: %v", session.PaymentReferenceID, err)
		return err.Error()
	}

	if result.EventID != "" {
		session.CalendarEventID = &result.EventID
	}
	if result.MeetingLink != "" {
		session.MeetingLink = &result.MeetingLink
	}
	session.EmailsSent = result.Notified

	if !result.Notified {
		return result.Error
	}
	return ""
}

func (uc *UseCase) releaseHold(ctx context.Context, details *paymentDetails) {
	if uc.holds == nil || details.endTime.IsZero() {
		return
	}

	start := details.startTime.In(uc.location)
	end := details.endTime.In(uc.location)
	key := hold.Key(
		details.tutorID,
		int(start.Weekday()),
		start.Hour()*60+start.Minute(),
		end.Hour()*60+end.Minute(),
	)

	if err := uc.holds.Release(ctx, key); err != nil {
		uc.log.Warn("Failed to release hold %s: %v", key, err)
	}
}

func replayResponse(session *domain.Session) *Response {
	return &Response{
		SessionID:        session.ID,
		TutorID:          session.TutorID,
		StudentID:        session.StudentID,
		ScheduledStart:   session.ScheduledStart,
		DurationHours:    session.DurationHours,
		Subtotal:         session.Subtotal,
		PlatformFee:      session.PlatformFee,
		Total:            session.Total,
		MeetingLink:      session.MeetingLink,
		EmailsSent:       session.EmailsSent,
		Status:           session.Status,
		AlreadyConfirmed: true,
	}
}
