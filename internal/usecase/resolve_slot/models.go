package resolve_slot

import "time"

// Request asks for the next concrete occurrence of a sub-range of a
// recurring window.
type Request struct {
	SlotID       string
	TutorID      string
	StudentID    string
	StartMinutes int
	EndMinutes   int
}

// Response carries the resolved absolute timestamps in the platform zone.
type Response struct {
	StartTime time.Time
	EndTime   time.Time
}
