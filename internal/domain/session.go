package domain

import "time"

// SessionStatus represents the status of a confirmed session.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Session represents a confirmed, billable tutoring appointment. Exactly one
// session exists per payment reference; the storage layer enforces it.
type Session struct {
	ID                 string
	TutorID            string
	StudentID          string
	ScheduledStart     time.Time
	DurationHours      float64
	Subtotal           int64
	PlatformFee        int64
	Total              int64
	PaymentReferenceID string
	MeetingLink        *string
	CalendarEventID    *string
	EmailsSent         bool
	Status             SessionStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the session can no longer change status.
func (s *Session) IsTerminal() bool {
	return s.Status == SessionStatusCompleted || s.Status == SessionStatusCancelled
}

// CanTransitionTo reports whether the status change is allowed. Transitions
// are forward only: a pending session may complete or cancel, terminal
// sessions never move again.
func (s *Session) CanTransitionTo(next SessionStatus) bool {
	if s.IsTerminal() {
		return false
	}
	return next == SessionStatusCompleted || next == SessionStatusCancelled
}

// ValidSessionStatus reports whether the string names a known status.
func ValidSessionStatus(s string) bool {
	switch SessionStatus(s) {
	case SessionStatusPending, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}
