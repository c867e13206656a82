package regexkit

import "fmt"

// ExtractBetween returns the substring of text strictly between the first
// match of start and the first match of end that begins after it.
// ErrNoMatch is returned when either marker is missing or the markers only
// occur in the wrong order.
func ExtractBetween(text string, start, end Part) (string, error) {
	startRe, err := matcher(start)
	if err != nil {
		return "", err
	}
	endRe, err := matcher(end)
	if err != nil {
		return "", err
	}
	startLoc := startRe.FindStringIndex(text)
	if startLoc == nil {
		return "", fmt.Errorf("%w: start pattern %q", ErrNoMatch, start.fragment())
	}
	rest := text[startLoc[1]:]
	endLoc := endRe.FindStringIndex(rest)
	if endLoc == nil {
		return "", fmt.Errorf("%w: end pattern %q after start match", ErrNoMatch, end.fragment())
	}
	return rest[:endLoc[0]], nil
}
