package domain

import "time"

// Review is a student's rating of a tutor after a session.
type Review struct {
	ID        string
	TutorID   string
	StudentID string
	Rating    int // 1..5
	Comment   *string
	CreatedAt time.Time
}
