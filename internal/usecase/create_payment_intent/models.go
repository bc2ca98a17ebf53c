package create_payment_intent

import "time"

// Request asks to price a slot sub-range and open a payment intent for it.
type Request struct {
	SlotID       string
	TutorID      string
	StudentID    string
	StartMinutes int
	EndMinutes   int
}

// Response carries everything the client needs to complete the payment and
// later confirm the session.
type Response struct {
	IntentID     string
	ClientSecret string
	BookingToken string

	Subtotal int64
	Fee      int64
	Total    int64
	Currency string

	StartTime time.Time
	EndTime   time.Time
}
