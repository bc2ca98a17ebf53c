package domain

import "time"

// AvailabilitySlot is a recurring weekly window a tutor offers. Deletion is
// logical (Active=false) so historical sessions keep a valid reference.
type AvailabilitySlot struct {
	ID           string
	TutorID      string
	DayOfWeek    int // 0 = Sunday .. 6 = Saturday
	StartMinutes int // minutes of day, 0..1439
	EndMinutes   int // minutes of day, 0..1439, > StartMinutes
	Active       bool
	CreatedAt    time.Time
}

// Contains reports whether the requested minute range fits inside the window.
func (s *AvailabilitySlot) Contains(startMinutes, endMinutes int) bool {
	return s.StartMinutes <= startMinutes &&
		startMinutes < endMinutes &&
		endMinutes <= s.EndMinutes
}

// DurationMinutes returns the full window length.
func (s *AvailabilitySlot) DurationMinutes() int {
	return s.EndMinutes - s.StartMinutes
}
