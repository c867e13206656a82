package patterns

import "github.com/patternkit/regexkit"

// dollarAmount matches currency amounts as they appear in financial text:
// "$1,000.50", "($2.5M)", "USD $3", "1B USD", "5 million dollars".
// Compiled case-insensitively so magnitude suffixes and currency words
// match in either case.
var dollarAmount = regexkit.MustCompile(regexkit.Fragment(
	`(?:USD\s*)?[-(]?\$(?:\d+(?:,\d{3})*(?:\.\d{1,2})?|\d+\.\d{1,2})(?:\s?[kKmMbBtT]| million| billion| trillion)?[)]?`+
		`|\d+(?:,\d{3})*(?:\.\d{1,2})?(?:\s?[kKmMbBtT]| million| billion| trillion)?\s*(?:USD|dollars)`,
), regexkit.CaseInsensitive())

// DollarAmount returns the shared dollar amount pattern.
func DollarAmount() *regexkit.Pattern { return dollarAmount }
