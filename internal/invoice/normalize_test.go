package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

func TestNormalizeGroupsTokensIntoLines(t *testing.T) {
	lines := docLines("ACME TRADERS", "Invoice No: 42")

	require.Len(t, lines, 2)
	assert.Equal(t, "ACME TRADERS", lines[0].Text)
	assert.Equal(t, "Invoice No: 42", lines[1].Text)
	assert.Equal(t, 1, lines[0].Page)
	assert.Len(t, lines[0].Tokens, 2)
}

func TestNormalizeStripsControlCharsAndEmptyTokens(t *testing.T) {
	toks := []extract.Token{
		{Value: "AC\x00ME", Page: 1, Line: 0, Conf: 1},
		{Value: "\x0b", Page: 1, Line: 0, Conf: 1},
		{Value: "  Ltd  ", Page: 1, Line: 0, Conf: 1},
	}
	lines := Normalize(toks)

	require.Len(t, lines, 1)
	assert.Equal(t, "ACME Ltd", lines[0].Text)
	assert.Len(t, lines[0].Tokens, 2)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first := docLines(sampleInvoice...)

	var again []extract.Token
	for _, ln := range first {
		again = append(again, ln.Tokens...)
	}
	second := Normalize(again)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Text, second[i].Text)
	}
}

func TestNormalizeMergesHyphenWraps(t *testing.T) {
	lines := docLines("Stainless Steel Fasten-", "ers Grade 304")

	require.Len(t, lines, 1)
	assert.Equal(t, "Stainless Steel Fasteners Grade 304", lines[0].Text)
}

func TestNormalizeNeverMergesIntoAmountRows(t *testing.T) {
	lines := docLines("Heavy Duty Bear-", "ing 8482 2 450.00 900.00")

	// The next line carries amounts, so the wrap stays unmerged.
	require.Len(t, lines, 2)
	assert.Equal(t, "Heavy Duty Bear-", lines[0].Text)
}
