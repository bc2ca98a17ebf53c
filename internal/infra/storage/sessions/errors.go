package sessions

import "errors"

var (
	// ErrSessionNotFound is returned when no session matches the lookup.
	ErrSessionNotFound = errors.New("sessions.repository: session not found")

	// ErrDuplicatePaymentReference is returned when an insert loses the race
	// on the payment_reference_id uniqueness constraint. Callers recover by
	// re-reading the winning row.
	ErrDuplicatePaymentReference = errors.New("sessions.repository: payment reference already used")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("sessions.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("sessions.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("sessions.repository: failed to scan row")
)
