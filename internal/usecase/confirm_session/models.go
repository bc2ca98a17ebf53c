package confirm_session

import (
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// Request confirms a paid booking into a session.
type Request struct {
	PaymentReferenceID string
	BookingToken       string
	TutorID            string
	StudentID          string
}

// Response is the confirmed session plus the notification outcome. A failed
// notification never fails the confirmation; it is reported in-band.
type Response struct {
	SessionID      string
	TutorID        string
	StudentID      string
	ScheduledStart time.Time
	DurationHours  float64
	Subtotal       int64
	PlatformFee    int64
	Total          int64
	MeetingLink    *string
	EmailsSent     bool
	Status         domain.SessionStatus

	// NotificationError is set when the calendar/notification step failed.
	NotificationError string

	// AlreadyConfirmed marks an idempotent replay: the session existed
	// before this request.
	AlreadyConfirmed bool
}

// paymentDetails is the trusted booking data recovered from intent metadata.
type paymentDetails struct {
	tutorID   string
	studentID string
	hours     float64
	startTime time.Time
	endTime   time.Time
}
