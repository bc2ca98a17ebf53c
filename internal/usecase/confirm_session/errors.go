package confirm_session

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("confirm_session: invalid input data")

	// ErrPaymentNotFound is returned when the gateway has no intent with the
	// given reference.
	ErrPaymentNotFound = errors.New("confirm_session: payment not found")

	// ErrPaymentNotCompleted is returned when the intent exists but has not
	// succeeded.
	ErrPaymentNotCompleted = errors.New("confirm_session: payment not completed")

	// ErrInvalidMetadata is returned when the intent's metadata is missing or
	// unparseable. This indicates the intent was not created by this service.
	ErrInvalidMetadata = errors.New("confirm_session: invalid payment metadata")

	// ErrAuthorizationMismatch is returned when the presented parties do not
	// match the parties recorded on the payment.
	ErrAuthorizationMismatch = errors.New("confirm_session: parties do not match payment")

	// ErrInvalidToken is returned for any booking token failure. The specific
	// failure mode is logged, never surfaced.
	ErrInvalidToken = errors.New("confirm_session: invalid booking token")

	// ErrEntityNotFound is returned when the tutor or student record is
	// missing.
	ErrEntityNotFound = errors.New("confirm_session: tutor or student not found")

	// ErrTutorNotEligible is returned when the tutor's approval has been
	// revoked since payment.
	ErrTutorNotEligible = errors.New("confirm_session: tutor is not eligible for bookings")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("confirm_session: internal error")
)
