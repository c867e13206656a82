package patterns

import (
	"fmt"

	"github.com/patternkit/regexkit"
)

const (
	defaultUsernameChars = "a-zA-Z0-9.!#$%&'*+\\-/=?^_`{|}~"
	defaultDomainChars   = "a-zA-Z0-9.-"
)

// EmailOption adjusts the character sets and TLD length of the email
// pattern.
type EmailOption func(*emailConfig)

type emailConfig struct {
	usernameChars string
	domainChars   string
	tldLength     int
}

// UsernameChars overrides the character class for the part before the @.
// The string is inserted into a regex character class verbatim, so ranges
// like "a-z0-9" work.
func UsernameChars(chars string) EmailOption {
	return func(c *emailConfig) { c.usernameChars = chars }
}

// DomainChars overrides the character class for the domain part.
func DomainChars(chars string) EmailOption {
	return func(c *emailConfig) { c.domainChars = chars }
}

// TLDLength fixes the top-level domain to exactly n letters. The default
// accepts any TLD of two or more letters.
func TLDLength(n int) EmailOption {
	return func(c *emailConfig) { c.tldLength = n }
}

// Email builds an email address pattern from the configured character
// sets. The pattern is unanchored: use regexkit.IsMatch for whole-string
// validation and regexkit.AllMatches for extraction.
func Email(opts ...EmailOption) (*regexkit.Pattern, error) {
	cfg := emailConfig{
		usernameChars: defaultUsernameChars,
		domainChars:   defaultDomainChars,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tldLength < 0 {
		return nil, fmt.Errorf("%w: TLD length must be positive, got %d", regexkit.ErrInvalidArgument, cfg.tldLength)
	}
	tld := "{2,}"
	if cfg.tldLength > 0 {
		tld = fmt.Sprintf("{%d}", cfg.tldLength)
	}
	src := fmt.Sprintf(`[%s]+@[%s]+\.[a-zA-Z]%s`, cfg.usernameChars, cfg.domainChars, tld)
	return regexkit.Compile(regexkit.Fragment(src))
}
