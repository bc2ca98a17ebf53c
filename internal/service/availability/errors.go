package availability

import "errors"

var (
	// ErrSlotNotFound is returned when the availability window does not exist.
	ErrSlotNotFound = errors.New("availability slot not found")

	// ErrTutorNotFound is returned when the tutor does not exist.
	ErrTutorNotFound = errors.New("tutor not found")

	// ErrAccessDenied is returned when the caller does not own the slot.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("availability service: internal error")
)
