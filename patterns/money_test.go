package patterns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternkit/regexkit"
	"github.com/patternkit/regexkit/patterns"
)

func TestDollarAmountValid(t *testing.T) {
	valid := []string{
		"$1",
		"$1.00",
		"$1.57 M",
		"$2.5k",
		"$1,000",
		"$1,000.00",
		"$1,000,000",
		"$1,000,000.00",
		"1B USD",
		"5 million dollars",
		"USD $3",
	}
	for _, amount := range valid {
		ok, err := regexkit.IsMatch(amount, patterns.DollarAmount())
		require.NoError(t, err)
		assert.True(t, ok, "expected match for %q", amount)
	}
}

func TestDollarAmountInvalid(t *testing.T) {
	invalid := []string{
		"1,00",
		"1.",
		".1",
		"$",
		"1,000.00.00",
		"1000000.00",
	}
	for _, amount := range invalid {
		ok, err := regexkit.IsMatch(amount, patterns.DollarAmount())
		require.NoError(t, err)
		assert.False(t, ok, "expected no match for %q", amount)
	}
}

func TestDollarAmountInText(t *testing.T) {
	ok, err := regexkit.ContainsMatch("The deal was worth $4.5M all told", patterns.DollarAmount())
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := regexkit.CountMatches("Paid $5 up front and $10 later", patterns.DollarAmount())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
