package create_payment_intent

import (
	"time"

	createPaymentIntent "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/create_payment_intent"
)

// CreatePaymentIntentRequest is the HTTP body for opening a payment intent.
// The student is the authenticated caller.
type CreatePaymentIntentRequest struct {
	SlotID       string `json:"slotId"`
	TutorID      string `json:"tutorId"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreatePaymentIntentRequest) ToUseCaseRequest(studentID string) *createPaymentIntent.Request {
	return &createPaymentIntent.Request{
		SlotID:       r.SlotID,
		TutorID:      r.TutorID,
		StudentID:    studentID,
		StartMinutes: r.StartMinutes,
		EndMinutes:   r.EndMinutes,
	}
}

// CreatePaymentIntentResponse carries the client secret, the booking token
// and the price breakdown.
type CreatePaymentIntentResponse struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	BookingToken string `json:"bookingToken"`
	Subtotal     int64  `json:"subtotal"`
	Fee          int64  `json:"fee"`
	Total        int64  `json:"total"`
	Currency     string `json:"currency"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(resp *createPaymentIntent.Response) *CreatePaymentIntentResponse {
	return &CreatePaymentIntentResponse{
		IntentID:     resp.IntentID,
		ClientSecret: resp.ClientSecret,
		BookingToken: resp.BookingToken,
		Subtotal:     resp.Subtotal,
		Fee:          resp.Fee,
		Total:        resp.Total,
		Currency:     resp.Currency,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		EndTime:      resp.EndTime.Format(time.RFC3339),
	}
}
