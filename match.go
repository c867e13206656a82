package regexkit

import (
	"fmt"
	"regexp"
	"strings"
)

// Match is a read-only view of one pattern occurrence: byte offsets into
// the input and the matched text.
type Match struct {
	Start int
	End   int
	Text  string
}

// IsMatch reports whether part matches text in its entirety, anchored at
// both ends.
func IsMatch(text string, part Part) (bool, error) {
	re, err := regexp.Compile(`\A(?:` + part.fragment() + `)\z`)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re.MatchString(text), nil
}

// ContainsMatch reports whether part matches any substring of text.
func ContainsMatch(text string, part Part) (bool, error) {
	re, err := matcher(part)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

// CountMatches returns the number of non-overlapping matches of part in
// text, scanning left to right.
func CountMatches(text string, part Part) (int, error) {
	re, err := matcher(part)
	if err != nil {
		return 0, err
	}
	return len(re.FindAllStringIndex(text, -1)), nil
}

// AllMatches returns every non-overlapping matched substring in
// left-to-right order. The result is fully materialized and empty when
// nothing matches.
func AllMatches(text string, part Part) ([]string, error) {
	re, err := matcher(part)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(text, -1), nil
}

// FindMatches is AllMatches with positions: one Match per occurrence.
func FindMatches(text string, part Part) ([]Match, error) {
	re, err := matcher(part)
	if err != nil {
		return nil, err
	}
	locs := re.FindAllStringIndex(text, -1)
	matches := make([]Match, len(locs))
	for i, loc := range locs {
		matches[i] = Match{Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]}
	}
	return matches, nil
}

// WordsBefore returns up to n whitespace-delimited tokens immediately
// preceding the first match of part in text. Fewer tokens come back when
// the match sits near the start of the text; the result is empty when part
// does not match at all.
func WordsBefore(text string, part Part, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: word count must be at least 1, got %d", ErrInvalidArgument, n)
	}
	re, err := matcher(part)
	if err != nil {
		return nil, err
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return nil, nil
	}
	words := strings.Fields(text[:loc[0]])
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return words, nil
}

// ReplaceAll replaces every non-overlapping match of part in text with
// replacement, inserted literally.
func ReplaceAll(text string, part Part, replacement string) (string, error) {
	re, err := matcher(part)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllLiteralString(text, replacement), nil
}
