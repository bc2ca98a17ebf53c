package slots

import "errors"

var (
	// ErrSlotNotFound is returned when the availability window does not exist.
	ErrSlotNotFound = errors.New("slots.repository: availability slot not found")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("slots.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("slots.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("slots.repository: failed to scan row")
)
