package sessions

import "errors"

var (
	// ErrSessionNotFound is returned when the session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrAccessDenied is returned when the caller is not a party to the
	// session.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned for unknown status names.
	ErrInvalidStatus = errors.New("invalid session status")

	// ErrInvalidTransition is returned when the status change is not a
	// forward transition.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("sessions service: internal error")
)
