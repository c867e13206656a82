package patterns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternkit/regexkit"
	"github.com/patternkit/regexkit/patterns"
)

func TestDateFormats(t *testing.T) {
	tests := []struct {
		name    string
		pattern *regexkit.Pattern
		input   string
	}{
		{"ymd dash", patterns.DateYMDDash(), "2023-09-17"},
		{"ymd dash short", patterns.DateYMDDash(), "2023-9-1"},
		{"ymd slash", patterns.DateYMDSlash(), "2023/09/17"},
		{"mdy slash", patterns.DateMDYSlash(), "09/17/2023"},
		{"mdy slash short", patterns.DateMDYSlash(), "1/9/2023"},
		{"mdy dash", patterns.DateMDYDash(), "09-17-2023"},
		{"day month year", patterns.DateDMonY(), "17-Sep-2023"},
		{"month day year", patterns.DateMonDY(), "Sep 17, 2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := regexkit.IsMatch(tt.input, tt.pattern)
			require.NoError(t, err)
			assert.True(t, ok, "expected %q to match", tt.input)
		})
	}
}

func TestAnyDate(t *testing.T) {
	text := "Dates: 2023-09-17, 09/17/2023, 17-09-2023, 2023/09/17, 17-Sep-2023, Sep 17, 2023, and 1/9/2023."

	got, err := regexkit.AllMatches(text, patterns.AnyDate())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2023-09-17",
		"09/17/2023",
		"17-09-2023",
		"2023/09/17",
		"17-Sep-2023",
		"Sep 17, 2023",
		"1/9/2023",
	}, got)
}

func TestAnyDateNoFalsePositives(t *testing.T) {
	for _, input := range []string{"order 123-456", "v2.3.4", "plain text"} {
		ok, err := regexkit.ContainsMatch(input, patterns.AnyDate())
		require.NoError(t, err)
		assert.False(t, ok, "input %q", input)
	}
}
