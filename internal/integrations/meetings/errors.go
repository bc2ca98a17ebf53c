package meetings

import "errors"

var (
	// ErrInternal is returned on transport-level client failures.
	ErrInternal = errors.New("meetings client: internal error")

	// ErrInvalidResponse is returned when the provider answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("meetings client: invalid response")

	// ErrNoCredentials is returned when no valid provider token can be
	// obtained.
	ErrNoCredentials = errors.New("meetings client: calendar provider not connected")
)
