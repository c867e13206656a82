// Package regexkit builds regular expressions by composing small, named
// parts instead of hand-writing raw regex syntax. It covers the common
// text-mining cases: fixed and bounded digit runs, whitespace, optional
// words, sequential concatenation and alternation, plus a set of matching
// helpers (anchored match, contains, count, extract-between and friends).
//
// Matching is delegated to the standard library regexp engine. The package
// only assembles pattern text and compiles it; it is not a matching engine
// of its own.
//
// # Parts
//
// Everything composes through the Part interface, which has exactly three
// implementations:
//
//   - Literal — plain text; regex metacharacters are escaped on render, so
//     "1+1" matches the three characters 1, + and 1.
//   - Fragment — raw regex syntax inserted verbatim.
//   - *Pattern — a compiled pattern, embedded by its source text.
//
// Whether a bare string is literal text or regex syntax cannot be inferred
// from its shape, so the caller states it in the type.
//
// # Usage
//
//	import "github.com/patternkit/regexkit"
//
//	three, _ := regexkit.NDigits(3)
//	areaCode, err := regexkit.CombineAll([]regexkit.Part{
//	    regexkit.Literal("area code"),
//	    regexkit.OptionalWhitespace(),
//	    regexkit.OptionalWord("is"),
//	    regexkit.OptionalWhitespace(),
//	    three,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, _ := regexkit.AllMatches(text, areaCode)
//
// Case-insensitivity is a whole-pattern compile flag, applied with the
// CaseInsensitive option; there is no per-fragment case control. A compiled
// case-insensitive pattern embedded into a larger one keeps its setting via
// an inline (?i:) group.
//
// # Errors
//
// Builders return ErrInvalidArgument for out-of-range parameters,
// combinators return ErrInvalidPattern when assembled text does not compile,
// and ExtractBetween returns ErrNoMatch when a required marker is missing.
// IsValidPattern is the one place a compile failure becomes a boolean
// instead of an error.
//
// # Concurrency
//
// All functions are pure and stateless. A *Pattern is immutable after
// construction and safe for concurrent reuse without coordination.
//
// Go's regexp engine runs in time linear in the input, so the catastrophic
// backtracking that pathological alternations trigger in backtracking
// engines does not occur here.
package regexkit
