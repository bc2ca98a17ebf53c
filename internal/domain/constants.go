package domain

// PlatformTimeZone is the single reference timezone all occurrences are
// resolved in. The marketplace operates in one zone; per-user timezones are
// a UI concern.
const PlatformTimeZone = "America/Mexico_City"

// PlatformFeeRate is the marketplace's cut of the tutor's session price.
const PlatformFeeRate = 0.08

// Minute-of-day bounds for availability windows.
const (
	MinMinuteOfDay = 0
	MaxMinuteOfDay = 1439
)

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)
