package hold

import "errors"

// ErrUnavailable is returned when Redis cannot be reached. Callers treat it
// as a degraded mode, not a booking failure.
var ErrUnavailable = errors.New("hold: redis unavailable")
