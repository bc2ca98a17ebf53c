package models

import (
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// Request models

// UpdateStatusRequest asks to move a session to a new status.
type UpdateStatusRequest struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// Response models

// SessionResponse is the session as exposed over the API.
type SessionResponse struct {
	ID                 string  `json:"id"`
	TutorID            string  `json:"tutorId"`
	StudentID          string  `json:"studentId"`
	ScheduledStart     string  `json:"scheduledStart"` // RFC3339
	DurationHours      float64 `json:"durationHours"`
	Subtotal           int64   `json:"subtotal"`
	PlatformFee        int64   `json:"platformFee"`
	Total              int64   `json:"total"`
	PaymentReferenceID string  `json:"paymentReferenceId"`
	MeetingLink        *string `json:"meetingLink,omitempty"`
	CalendarEventID    *string `json:"calendarEventId,omitempty"`
	EmailsSent         bool    `json:"emailsSent"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"createdAt"`
}

// SessionListResponse wraps a list of sessions.
type SessionListResponse struct {
	Sessions []*SessionResponse `json:"sessions"`
	Total    int                `json:"total"`
}

// FromDomainSession converts a domain session into the API shape.
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		ID:                 s.ID,
		TutorID:            s.TutorID,
		StudentID:          s.StudentID,
		ScheduledStart:     s.ScheduledStart.Format(time.RFC3339),
		DurationHours:      s.DurationHours,
		Subtotal:           s.Subtotal,
		PlatformFee:        s.PlatformFee,
		Total:              s.Total,
		PaymentReferenceID: s.PaymentReferenceID,
		MeetingLink:        s.MeetingLink,
		CalendarEventID:    s.CalendarEventID,
		EmailsSent:         s.EmailsSent,
		Status:             string(s.Status),
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainSessionList converts a list of domain sessions.
func FromDomainSessionList(list []*domain.Session) *SessionListResponse {
	result := make([]*SessionResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomainSession(s))
	}
	return &SessionListResponse{
		Sessions: result,
		Total:    len(result),
	}
}
