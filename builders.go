package regexkit

import (
	"fmt"
	"regexp"
)

// NDigits returns a fragment matching exactly n consecutive decimal digits.
func NDigits(n int) (Fragment, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: digit count must be at least 1, got %d", ErrInvalidArgument, n)
	}
	return Fragment(fmt.Sprintf(`\d{%d}`, n)), nil
}

// UpToNDigits returns a fragment matching between 1 and n decimal digits.
func UpToNDigits(n int) (Fragment, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: digit count must be at least 1, got %d", ErrInvalidArgument, n)
	}
	return Fragment(fmt.Sprintf(`\d{1,%d}`, n)), nil
}

// Whitespace returns a fragment matching one or more whitespace characters.
func Whitespace() Fragment { return `\s+` }

// OptionalWhitespace returns a fragment matching zero or more whitespace
// characters.
func OptionalWhitespace() Fragment { return `\s*` }

// OptionalWord returns a fragment matching word zero or one time. The word
// is escaped first, so it always matches literally. With the WordBoundaries
// option the word only counts when it sits on word boundaries.
func OptionalWord(word string, opts ...Option) Fragment {
	cfg := newConfig(opts)
	escaped := regexp.QuoteMeta(word)
	if cfg.wordBoundaries {
		return Fragment(`(?:\b` + escaped + `\b)?`)
	}
	return Fragment("(?:" + escaped + ")?")
}

// MakeOptional wraps part in a non-capturing optional group. A compiled
// pattern is embedded by its source text.
func MakeOptional(part Part) Fragment {
	return Fragment("(?:" + part.fragment() + ")?")
}
