package reviews

import "errors"

var (
	// ErrNoCompletedSession is returned when the student never completed a
	// session with the tutor.
	ErrNoCompletedSession = errors.New("no completed session with this tutor")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("reviews service: internal error")
)
