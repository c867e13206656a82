package patterns

import "github.com/patternkit/regexkit"

// ssn is assembled through the combinators: three, two and four digit
// groups joined by literal hyphens, bounded so it does not fire inside
// longer digit runs.
var ssn = regexkit.MustCombineAll([]regexkit.Part{
	regexkit.Fragment(`\b`),
	digits(3),
	regexkit.Literal("-"),
	digits(2),
	regexkit.Literal("-"),
	digits(4),
	regexkit.Fragment(`\b`),
})

// SSN returns the US social security number pattern.
func SSN() *regexkit.Pattern { return ssn }

// pii matches any of the personally identifiable values handled by this
// package. SSN is listed before the phone pattern so it wins when both
// could start on the same digits.
var pii = regexkit.MustCombineAny([]regexkit.Part{ssn, phoneNumber, mustEmail()})

// PII returns the combined PII pattern, suitable for redaction with
// regexkit.ReplaceAll.
func PII() *regexkit.Pattern { return pii }

func mustEmail() *regexkit.Pattern {
	p, err := Email()
	if err != nil {
		panic(err)
	}
	return p
}

// digits is a MustCompile-style shorthand over regexkit.NDigits for static
// pattern tables.
func digits(n int) regexkit.Fragment {
	f, err := regexkit.NDigits(n)
	if err != nil {
		panic(err)
	}
	return f
}
