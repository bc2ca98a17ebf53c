package bookingtoken

import "errors"

var (
	// ErrMalformedToken is returned when the token does not have the
	// expected structure.
	ErrMalformedToken = errors.New("bookingtoken: malformed token")

	// ErrTokenMismatch is returned when the IDs inside the token do not match
	// the triple presented at verification time.
	ErrTokenMismatch = errors.New("bookingtoken: token bound to different booking")

	// ErrTokenExpired is returned when the token is older than the TTL.
	ErrTokenExpired = errors.New("bookingtoken: token expired")

	// ErrBadSignature is returned when the HMAC does not verify.
	ErrBadSignature = errors.New("bookingtoken: signature mismatch")

	// ErrInvalidField is returned at issue time when an ID contains the
	// token delimiter.
	ErrInvalidField = errors.New("bookingtoken: field contains delimiter")
)
