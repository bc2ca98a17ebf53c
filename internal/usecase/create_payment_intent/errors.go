package create_payment_intent

import "errors"

var (
	// ErrSlotNotFound is returned when the availability window does not
	// exist, is inactive, or belongs to a different tutor.
	ErrSlotNotFound = errors.New("create_payment_intent: availability slot not found")

	// ErrTutorNotFound is returned when the tutor record is missing.
	ErrTutorNotFound = errors.New("create_payment_intent: tutor not found")

	// ErrTutorNotEligible is returned when the tutor is not approved for
	// bookings.
	ErrTutorNotEligible = errors.New("create_payment_intent: tutor is not eligible for bookings")

	// ErrInvalidRange is returned when the requested minute range does not
	// fit inside the window.
	ErrInvalidRange = errors.New("create_payment_intent: invalid requested range")

	// ErrSlotHeld is returned when another student currently holds the
	// requested range.
	ErrSlotHeld = errors.New("create_payment_intent: slot range is held by another booking")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_payment_intent: invalid input data")

	// ErrGateway is returned when the payment provider rejects or fails the
	// intent creation.
	ErrGateway = errors.New("create_payment_intent: payment gateway error")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("create_payment_intent: internal error")
)
