package domain

import "time"

// Student is the directory entry for the booking side of a session.
type Student struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
