package regexkit

import (
	"fmt"
	"regexp"
)

// Pattern is an immutable compiled pattern bound to a case-sensitivity
// setting. It is safe for concurrent use and can itself be embedded into a
// larger pattern as a Part.
type Pattern struct {
	re          *regexp.Regexp
	source      string
	insensitive bool
}

// newPattern compiles source. Case-insensitivity is applied as a
// whole-pattern engine flag, never by transforming the text.
func newPattern(source string, insensitive bool) (*Pattern, error) {
	expr := source
	if insensitive {
		expr = "(?i)" + source
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Pattern{re: re, source: source, insensitive: insensitive}, nil
}

// String returns the pattern source text, without the case-insensitivity
// flag.
func (p *Pattern) String() string { return p.source }

// CaseInsensitive reports whether the pattern was compiled
// case-insensitively.
func (p *Pattern) CaseInsensitive() bool { return p.insensitive }

// Regexp exposes the underlying engine object for callers that need the
// full regexp API.
func (p *Pattern) Regexp() *regexp.Regexp { return p.re }

// fragment renders the pattern for embedding into a larger one. A
// case-insensitive pattern is wrapped in an inline (?i:) group so the
// setting survives composition.
func (p *Pattern) fragment() string {
	if p.insensitive {
		return "(?i:" + p.source + ")"
	}
	return p.source
}

// matcher returns the engine object for a Part. Compiled patterns reuse
// theirs; fragments and literals compile on the fly with default case
// sensitivity.
func matcher(p Part) (*regexp.Regexp, error) {
	if pat, ok := p.(*Pattern); ok {
		return pat.re, nil
	}
	re, err := regexp.Compile(p.fragment())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}
