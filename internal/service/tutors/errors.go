package tutors

import "errors"

var (
	// ErrTutorNotFound is returned when the tutor does not exist.
	ErrTutorNotFound = errors.New("tutor not found")

	// ErrInvalidStatus is returned for unknown status names.
	ErrInvalidStatus = errors.New("invalid tutor status")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("tutors service: internal error")
)
