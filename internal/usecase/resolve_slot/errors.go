package resolve_slot

import "errors"

var (
	// ErrSlotNotFound is returned when the availability window does not
	// exist or belongs to a different tutor.
	ErrSlotNotFound = errors.New("resolve_slot: availability slot not found")

	// ErrSlotInactive is returned for windows the tutor has withdrawn.
	ErrSlotInactive = errors.New("resolve_slot: availability slot is no longer offered")

	// ErrInvalidRange is returned when the requested minute range does not
	// fit inside the window.
	ErrInvalidRange = errors.New("resolve_slot: invalid requested range")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("resolve_slot: invalid input data")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("resolve_slot: internal error")
)
