package regexkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternkit/regexkit"
)

func TestExtractBetween(t *testing.T) {
	got, err := regexkit.ExtractBetween("hello [world]!", regexkit.Literal("["), regexkit.Literal("]"))
	require.NoError(t, err)
	assert.Equal(t, "world", got)

	// Strictly between: surrounding whitespace belongs to the interior.
	got, err = regexkit.ExtractBetween("begin MIDDLE end", regexkit.Literal("begin"), regexkit.Literal("end"))
	require.NoError(t, err)
	assert.Equal(t, " MIDDLE ", got)

	// First start match, first end match after it.
	got, err = regexkit.ExtractBetween("[a] and [b]", regexkit.Literal("["), regexkit.Literal("]"))
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestExtractBetweenSpansLines(t *testing.T) {
	got, err := regexkit.ExtractBetween("start\nline one\nline two\nstop", regexkit.Literal("start"), regexkit.Literal("stop"))
	require.NoError(t, err)
	assert.Equal(t, "\nline one\nline two\n", got)
}

func TestExtractBetweenCompiledPatterns(t *testing.T) {
	start := regexkit.MustCompile(regexkit.Literal("BEGIN"), regexkit.CaseInsensitive())
	end := regexkit.MustCompile(regexkit.Literal("END"), regexkit.CaseInsensitive())

	got, err := regexkit.ExtractBetween("begin payload end", start, end)
	require.NoError(t, err)
	assert.Equal(t, " payload ", got)
}

func TestExtractBetweenNoMatch(t *testing.T) {
	// Missing start marker.
	_, err := regexkit.ExtractBetween("no markers here", regexkit.Literal("["), regexkit.Literal("]"))
	assert.ErrorIs(t, err, regexkit.ErrNoMatch)

	// Missing end marker.
	_, err = regexkit.ExtractBetween("only [ here", regexkit.Literal("["), regexkit.Literal("]"))
	assert.ErrorIs(t, err, regexkit.ErrNoMatch)

	// Markers present but in the wrong order.
	_, err = regexkit.ExtractBetween("] wrong way [", regexkit.Literal("["), regexkit.Literal("]"))
	assert.ErrorIs(t, err, regexkit.ErrNoMatch)
}

func TestExtractBetweenInvalidFragment(t *testing.T) {
	_, err := regexkit.ExtractBetween("text", regexkit.Fragment("("), regexkit.Literal("]"))
	assert.ErrorIs(t, err, regexkit.ErrInvalidPattern)

	_, err = regexkit.ExtractBetween("text", regexkit.Literal("["), regexkit.Fragment("("))
	assert.ErrorIs(t, err, regexkit.ErrInvalidPattern)
}
