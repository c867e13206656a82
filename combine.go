package regexkit

import (
	"regexp"
	"strings"
)

// Option adjusts how parts are rendered and how combined patterns compile.
type Option func(*config)

type config struct {
	insensitive    bool
	wordBoundaries bool
	delimiter      Part
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// CaseInsensitive compiles the combined pattern with the engine's
// case-insensitivity flag. The flag covers the whole pattern; there is no
// per-fragment case control.
func CaseInsensitive() Option {
	return func(c *config) { c.insensitive = true }
}

// WordBoundaries restricts matches to word boundaries. It applies to
// OptionalWord and to the alternation built by CombineAny.
func WordBoundaries() Option {
	return func(c *config) { c.wordBoundaries = true }
}

// Delimiter makes CombineAll insert part between every pair of combined
// parts, for example OptionalWhitespace to tolerate spacing.
func Delimiter(part Part) Option {
	return func(c *config) { c.delimiter = part }
}

// Compile renders a single part into a compiled pattern.
func Compile(part Part, opts ...Option) (*Pattern, error) {
	cfg := newConfig(opts)
	return newPattern(part.fragment(), cfg.insensitive)
}

// MustCompile is like Compile but panics on error. Intended for static
// patterns known to be valid, mirroring regexp.MustCompile.
func MustCompile(part Part, opts ...Option) *Pattern {
	p, err := Compile(part, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// CombineAll concatenates parts in the given order into one pattern that
// matches all of them in sequence with no gap in between, unless a Delimiter
// option supplies a separator fragment. Combining the same parts with the
// same options always yields textually identical pattern source.
func CombineAll(parts []Part, opts ...Option) (*Pattern, error) {
	cfg := newConfig(opts)
	sep := ""
	if cfg.delimiter != nil {
		sep = cfg.delimiter.fragment()
	}
	rendered := make([]string, len(parts))
	for i, part := range parts {
		rendered[i] = part.fragment()
	}
	return newPattern(strings.Join(rendered, sep), cfg.insensitive)
}

// MustCombineAll is like CombineAll but panics on error.
func MustCombineAll(parts []Part, opts ...Option) *Pattern {
	p, err := CombineAll(parts, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// CombineAny joins parts with alternation: exactly one of them has to
// match. Each part is wrapped in a non-capturing group so alternation never
// leaks into part internals. Alternatives are tried in the given order; when
// they overlap, list the more specific one first.
func CombineAny(parts []Part, opts ...Option) (*Pattern, error) {
	cfg := newConfig(opts)
	rendered := make([]string, len(parts))
	for i, part := range parts {
		rendered[i] = "(?:" + part.fragment() + ")"
	}
	source := "(?:" + strings.Join(rendered, "|") + ")"
	if cfg.wordBoundaries {
		source = `\b` + source + `\b`
	}
	return newPattern(source, cfg.insensitive)
}

// MustCombineAny is like CombineAny but panics on error.
func MustCombineAny(parts []Part, opts ...Option) *Pattern {
	p, err := CombineAny(parts, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// IsValidPattern reports whether text compiles as a regular expression.
// This is the one place a compile failure is converted to a boolean rather
// than surfaced as an error.
func IsValidPattern(text string) bool {
	_, err := regexp.Compile(text)
	return err == nil
}
