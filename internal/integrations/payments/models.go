package payments

// Intent statuses as reported by the gateway. Only "succeeded" permits
// session confirmation.
const (
	StatusRequiresPayment = "requires_payment"
	StatusProcessing      = "processing"
	StatusSucceeded       = "succeeded"
	StatusCancelled       = "cancelled"
)

// Metadata keys the booking flow round-trips through the gateway. The
// confirmation path trusts these values over anything the client resubmits.
const (
	MetadataTutorID   = "tutorId"
	MetadataStudentID = "studentId"
	MetadataHours     = "hours"
	MetadataStartTime = "startTime"
	MetadataEndTime   = "endTime"
)

// Intent is a payment authorization at the external gateway.
type Intent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"clientSecret"`
	Status       string            `json:"status"`
	Amount       int64             `json:"amount"` // minor units
	Currency     string            `json:"currency"`
	Metadata     map[string]string `json:"metadata"`
}

type createIntentRequest struct {
	Amount   int64             `json:"amount"` // minor units
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

// ErrorResponse is the gateway's error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
