package regexkit

import "errors"

var (
	// ErrInvalidArgument is returned when a builder receives an out-of-range
	// parameter, such as a digit count below one.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPattern is returned when assembled pattern text does not
	// compile in the regexp engine.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNoMatch is returned by consumers that require a match, such as
	// ExtractBetween, when none is found.
	ErrNoMatch = errors.New("no match")
)
