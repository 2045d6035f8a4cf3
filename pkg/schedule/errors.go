package schedule

import "errors"

var (
	// ErrInvalidConfig is returned when environment configuration cannot be
	// loaded or parsed.
	ErrInvalidConfig = errors.New("schedule: invalid configuration")
)
