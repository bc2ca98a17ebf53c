package students

import "errors"

var (
	// ErrStudentNotFound is returned when the student does not exist.
	ErrStudentNotFound = errors.New("students.repository: student not found")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("students.repository: failed to build query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("students.repository: failed to scan row")
)
