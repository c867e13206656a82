// Package patterns ships ready-made patterns for values that keep showing
// up in free text: phone numbers, email addresses, dollar amounts, social
// security numbers and dates. All of them are regexkit patterns, so they
// plug straight into the regexkit consumers and combinators.
//
//	ok, _ := regexkit.ContainsMatch(text, patterns.PhoneNumber())
//	clean, _ := regexkit.ReplaceAll(text, patterns.PII(), "__REDACTED__")
//
// The accessors return shared compiled patterns; patterns are immutable, so
// sharing them across goroutines is fine.
//
// The regexp engine has no lookaround, so patterns that would want one (for
// example a minimum total digit count for phone numbers) make do without:
// PhoneNumber accepts some short separator-delimited digit groups a
// backtracking engine with lookahead could reject.
package patterns
