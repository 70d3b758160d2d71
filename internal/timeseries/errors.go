package timeseries

import "errors"

// Errors reported by crop, interpolation and grid generation.
// All are detected synchronously; retrying reproduces the same failure.
var (
	// ErrInvalidRange is returned when the resolved crop interval has
	// tmin greater than tmax.
	ErrInvalidRange = errors.New("invalid range: tmin greater than tmax")

	// ErrEmptyResult is returned when a crop selects zero rows. A zero-row
	// table cannot feed derived-attribute computation, so this is an error
	// rather than an empty table.
	ErrEmptyResult = errors.New("empty result: no rows in range")

	// ErrInsufficientData is returned when interpolation is requested on a
	// table with fewer than two rows.
	ErrInsufficientData = errors.New("insufficient data: interpolation requires at least 2 rows")

	// ErrMissingNominalRate is returned when an automatic resampling grid
	// is requested without a configured nominal sampling frequency.
	ErrMissingNominalRate = errors.New("missing nominal sampling frequency")

	// ErrOutOfRange is returned when a requested timestamp lies outside the
	// source table's timestamp bounds. Extrapolation is not supported.
	ErrOutOfRange = errors.New("timestamp out of source range")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
