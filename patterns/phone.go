package patterns

import "github.com/patternkit/regexkit"

// phoneNumber matches common phone formats: an optional country code, an
// area code with or without parentheses, then either digit groups separated
// by hyphens, dots or spaces, or one unbroken run of 7-10 digits. No
// minimum total digit count is enforced (see the package comment).
var phoneNumber = regexkit.MustCompile(regexkit.Fragment(
	`(?:\+?\d{1,4}[-.\s]?)?(?:\(\d{1,4}\)|\d{1,4})[-.\s]?(?:\d{1,4}(?:[-.\s]\d{1,4}){0,2}|\d{7,10})`,
))

// PhoneNumber returns the shared phone number pattern.
func PhoneNumber() *regexkit.Pattern { return phoneNumber }
