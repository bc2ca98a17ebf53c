package meetings

import "time"

// CreateMeetingRequest describes the calendar event + notifications for one
// confirmed session.
type CreateMeetingRequest struct {
	TutorName     string    `json:"tutorName"`
	TutorEmail    string    `json:"tutorEmail"`
	StudentName   string    `json:"studentName"`
	StudentEmail  string    `json:"studentEmail"`
	StartTime     time.Time `json:"startTime"`
	DurationHours float64   `json:"durationHours"`
	RequestID     string    `json:"requestId"` // dedupes provider-side retries
	TimeZone      string    `json:"timeZone"`
}

// MeetingResult is the provider's structured outcome. Notification failures
// come back as Notified=false + Error instead of an HTTP error, so a flaky
// email provider can never fail the booking.
type MeetingResult struct {
	EventID     string `json:"eventId"`
	MeetingLink string `json:"meetingLink"`
	Notified    bool   `json:"notified"`
	Error       string `json:"error,omitempty"`
}
