package regexkit

import "regexp"

// Part is one piece of a pattern under construction. It is implemented by
// Literal, Fragment and *Pattern.
type Part interface {
	fragment() string
}

// Literal is plain text matched character for character. Regex
// metacharacters are escaped when the literal is rendered into a pattern.
type Literal string

func (l Literal) fragment() string { return regexp.QuoteMeta(string(l)) }

// Fragment is regex syntax inserted into a pattern verbatim. The text is
// assumed valid; invalid syntax surfaces as ErrInvalidPattern when the
// enclosing pattern compiles.
type Fragment string

func (f Fragment) fragment() string { return string(f) }
