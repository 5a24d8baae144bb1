package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

var testNow = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func TestExtractHeaderLabeledTier(t *testing.T) {
	lines := docLines(sampleInvoice...)
	h := extractHeader(lines, firstItemRowIndex(lines), testNow)

	assert.Equal(t, "INV-1001", h.InvoiceNo)
	assert.Equal(t, StrategyLabeled, h.InvoiceNoStrategy)
	require.NotNil(t, h.BillDate)
	assert.Equal(t, time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC), *h.BillDate)
	assert.Equal(t, StrategyLabeled, h.DateStrategy)
}

func TestExtractHeaderLabelValueOnNextLine(t *testing.T) {
	lines := docLines(
		"Invoice No:",
		"WS/2025/118",
		"Dated:",
		"03/07/2025",
	)
	h := extractHeader(lines, -1, testNow)

	assert.Equal(t, "WS/2025/118", h.InvoiceNo)
	assert.Equal(t, StrategyLabeled, h.InvoiceNoStrategy)
	require.NotNil(t, h.BillDate)
	// Day-first locale: 3 July, not 7 March.
	assert.Equal(t, time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), *h.BillDate)
}

func TestExtractHeaderFallbackTier(t *testing.T) {
	lines := docLines(
		"ACME TRADERS PVT LTD",
		"INV/118/25-26 12-04-25",
		"Sl Description HSN Qty Rate Amount",
		"1 Copper Wire 8544 10 150.00 1500.00",
	)
	h := extractHeader(lines, firstItemRowIndex(lines), testNow)

	assert.Equal(t, "INV/118/25-26", h.InvoiceNo)
	assert.Equal(t, StrategyFallback, h.InvoiceNoStrategy)
	require.NotNil(t, h.BillDate)
	assert.Equal(t, time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC), *h.BillDate)
	assert.Equal(t, StrategyFallback, h.DateStrategy)
}

func TestExtractHeaderFallbackStopsAtItemTable(t *testing.T) {
	lines := docLines(
		"ACME TRADERS PVT LTD",
		"Sl Description HSN Qty Rate Amount",
		"1 Pipe Clamp PC-200/XL 7307 4 60.00 240.00",
	)
	h := extractHeader(lines, firstItemRowIndex(lines), testNow)

	// The code-shaped token inside the item table must not leak out as an
	// invoice number.
	assert.Empty(t, h.InvoiceNo)
	assert.Equal(t, StrategyNone, h.InvoiceNoStrategy)
}

func TestExtractHeaderPositionalTier(t *testing.T) {
	mk := func(value string, line int, x0, x1 float64) extract.Token {
		return extract.Token{
			Value: value, Page: 1, Line: line, Conf: 1,
			BBox: &extract.Rect{X0: x0, Y0: float64(line) * 10, X1: x1, Y1: float64(line)*10 + 8},
		}
	}
	lines := Normalize([]extract.Token{
		mk("ACME", 0, 10, 60),
		mk("TRADERS", 0, 65, 140),
		mk("INV-2031", 0, 480, 590),
		mk("Some", 1, 10, 50),
		mk("address", 1, 55, 120),
	})
	h := extractHeader(lines, -1, testNow)

	assert.Equal(t, "INV-2031", h.InvoiceNo)
	assert.Equal(t, StrategyPositional, h.InvoiceNoStrategy)
}

func TestParseBillDateTwoDigitYearPivot(t *testing.T) {
	d, ok := parseBillDate("12-Apr-99", testNow)
	require.True(t, ok)
	assert.Equal(t, 1999, d.Year())

	d, ok = parseBillDate("12-Apr-25", testNow)
	require.True(t, ok)
	assert.Equal(t, 2025, d.Year())
}

func TestParseBillDateRejectsGarbage(t *testing.T) {
	_, ok := parseBillDate("not-a-date", testNow)
	assert.False(t, ok)
}
