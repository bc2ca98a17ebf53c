package reviews

import "errors"

var (
	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("reviews.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("reviews.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("reviews.repository: failed to scan row")
)
