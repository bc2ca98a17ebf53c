package domain

import "time"

// TutorStatus is the vetting state of a tutor application.
type TutorStatus string

const (
	TutorStatusPending  TutorStatus = "pending"
	TutorStatusApproved TutorStatus = "approved"
	TutorStatusRejected TutorStatus = "rejected"
)

// Tutor is the directory entry this service reads when validating bookings.
// Profile management lives in the marketplace application, not here.
type Tutor struct {
	ID         string
	Name       string
	Email      string
	HourlyRate int64 // whole currency units per hour
	Status     TutorStatus
	CalLink    *string
	CreatedAt  time.Time
}

// IsApproved reports whether the tutor may receive new bookings. Approval
// can be revoked at any time, so callers must re-check right before
// persisting a session.
func (t *Tutor) IsApproved() bool {
	return t.Status == TutorStatusApproved
}

// ValidTutorStatus reports whether the string names a known status.
func ValidTutorStatus(s string) bool {
	switch TutorStatus(s) {
	case TutorStatusPending, TutorStatusApproved, TutorStatusRejected:
		return true
	}
	return false
}
