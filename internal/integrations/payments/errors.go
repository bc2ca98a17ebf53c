package payments

import "errors"

var (
	// ErrIntentNotFound is returned when the gateway has no intent with the
	// given reference.
	ErrIntentNotFound = errors.New("payments client: intent not found")

	// ErrInternal is returned on transport-level client failures.
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse is returned when the gateway answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("payments client: invalid response")
)
