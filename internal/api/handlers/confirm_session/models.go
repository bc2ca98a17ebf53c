package confirm_session

import (
	"time"

	confirmSession "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/confirm_session"
)

// ConfirmSessionRequest is the HTTP body for confirming a paid booking. The
// student is the authenticated caller.
type ConfirmSessionRequest struct {
	PaymentReferenceID string `json:"paymentReferenceId"`
	BookingToken       string `json:"bookingToken"`
	TutorID            string `json:"tutorId"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *ConfirmSessionRequest) ToUseCaseRequest(studentID string) *confirmSession.Request {
	return &confirmSession.Request{
		PaymentReferenceID: r.PaymentReferenceID,
		BookingToken:       r.BookingToken,
		TutorID:            r.TutorID,
		StudentID:          studentID,
	}
}

// ConfirmSessionResponse is the confirmed session. Notification problems are
// reported in-band: emailsSent=false plus notificationError.
type ConfirmSessionResponse struct {
	SessionID         string  `json:"sessionId"`
	TutorID           string  `json:"tutorId"`
	StudentID         string  `json:"studentId"`
	ScheduledStart    string  `json:"scheduledStart"`
	DurationHours     float64 `json:"durationHours"`
	Subtotal          int64   `json:"subtotal"`
	PlatformFee       int64   `json:"platformFee"`
	Total             int64   `json:"total"`
	MeetingLink       *string `json:"meetingLink,omitempty"`
	EmailsSent        bool    `json:"emailsSent"`
	Status            string  `json:"status"`
	NotificationError string  `json:"notificationError,omitempty"`
	AlreadyConfirmed  bool    `json:"alreadyConfirmed"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(resp *confirmSession.Response) *ConfirmSessionResponse {
	return &ConfirmSessionResponse{
		SessionID:         resp.SessionID,
		TutorID:           resp.TutorID,
		StudentID:         resp.StudentID,
		ScheduledStart:    resp.ScheduledStart.Format(time.RFC3339),
		DurationHours:     resp.DurationHours,
		Subtotal:          resp.Subtotal,
		PlatformFee:       resp.PlatformFee,
		Total:             resp.Total,
		MeetingLink:       resp.MeetingLink,
		EmailsSent:        resp.EmailsSent,
		Status:            string(resp.Status),
		NotificationError: resp.NotificationError,
		AlreadyConfirmed:  resp.AlreadyConfirmed,
	}
}
