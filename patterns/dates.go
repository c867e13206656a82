package patterns

import "github.com/patternkit/regexkit"

const monthAbbrev = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

var (
	dateYMDDash  = regexkit.MustCompile(regexkit.Fragment(`\d{4}-\d{1,2}-\d{1,2}`))
	dateYMDSlash = regexkit.MustCompile(regexkit.Fragment(`\d{4}/\d{1,2}/\d{1,2}`))
	dateMDYSlash = regexkit.MustCompile(regexkit.Fragment(`\d{1,2}/\d{1,2}/\d{4}`))
	dateMDYDash  = regexkit.MustCompile(regexkit.Fragment(`\d{1,2}-\d{1,2}-\d{4}`))
	dateDMonY    = regexkit.MustCompile(regexkit.Fragment(`\d{1,2}-` + monthAbbrev + `-\d{4}`))
	dateMonDY    = regexkit.MustCompile(regexkit.Fragment(monthAbbrev + ` \d{1,2}, \d{4}`))

	// The month-name forms go first: they are the most specific and would
	// otherwise lose to the numeric alternatives on shared digit prefixes.
	anyDate = regexkit.MustCombineAny([]regexkit.Part{
		dateDMonY, dateMonDY, dateYMDDash, dateYMDSlash, dateMDYSlash, dateMDYDash,
	})
)

// DateYMDDash matches dates like 2023-09-17.
func DateYMDDash() *regexkit.Pattern { return dateYMDDash }

// DateYMDSlash matches dates like 2023/09/17.
func DateYMDSlash() *regexkit.Pattern { return dateYMDSlash }

// DateMDYSlash matches dates like 09/17/2023 or 1/9/2023. The same shape
// covers day-first dates; the pattern cannot tell the two conventions
// apart.
func DateMDYSlash() *regexkit.Pattern { return dateMDYSlash }

// DateMDYDash matches dates like 09-17-2023.
func DateMDYDash() *regexkit.Pattern { return dateMDYDash }

// DateDMonY matches dates like 17-Sep-2023.
func DateDMonY() *regexkit.Pattern { return dateDMonY }

// DateMonDY matches dates like Sep 17, 2023.
func DateMonDY() *regexkit.Pattern { return dateMonDY }

// AnyDate matches any of the supported date formats.
func AnyDate() *regexkit.Pattern { return anyDate }
