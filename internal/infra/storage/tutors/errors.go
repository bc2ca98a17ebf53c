package tutors

import "errors"

var (
	// ErrTutorNotFound is returned when the tutor does not exist.
	ErrTutorNotFound = errors.New("tutors.repository: tutor not found")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("tutors.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("tutors.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("tutors.repository: failed to scan row")
)
