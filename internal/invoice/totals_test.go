package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconcile(texts ...string) TotalsSummary {
	lines := docLines(texts...)
	items := extractLineItems(lines)
	return reconcileTotals(lines, items, decimal.NewFromInt(1), 0.03)
}

func TestReconcileTotalsBalancedInvoice(t *testing.T) {
	tot := reconcile(sampleInvoice...)

	assert.True(t, tot.ComputedSubtotal.Equal(dec("2500.00")))
	require.NotNil(t, tot.PrintedSubtotal)
	assert.True(t, tot.PrintedSubtotal.Equal(dec("2500.00")))
	require.NotNil(t, tot.PrintedTax)
	assert.True(t, tot.PrintedTax.Equal(dec("450.00")))
	require.NotNil(t, tot.PrintedGrandTotal)
	assert.True(t, tot.PrintedGrandTotal.Equal(dec("2950.00")))
	require.NotNil(t, tot.Discrepancy)
	assert.True(t, tot.Discrepancy.IsZero())
}

func TestReconcileTotalsWithinToleranceIsZero(t *testing.T) {
	// Rounding drift of 0.40 on a 2950 invoice sits inside max(1.00, 3%).
	tot := reconcile(
		"Sl Description HSN Qty Rate Amount",
		"1 Copper Wire 8544 10 150.00 1,500.00",
		"Grand Total 1,500.40",
	)

	require.NotNil(t, tot.Discrepancy)
	assert.True(t, tot.Discrepancy.IsZero())
}

func TestReconcileTotalsMismatchSurvives(t *testing.T) {
	tot := reconcile(
		"Sl Description HSN Qty Rate Amount",
		"1 Copper Wire 8544 10 150.00 1,500.00",
		"Grand Total 2,100.00",
	)

	require.NotNil(t, tot.Discrepancy)
	assert.True(t, tot.Discrepancy.Equal(dec("600.00")))
}

func TestReconcileTotalsMissingGrandTotal(t *testing.T) {
	tot := reconcile(
		"Sl Description HSN Qty Rate Amount",
		"1 Copper Wire 8544 10 150.00 1,500.00",
	)

	assert.Nil(t, tot.Discrepancy, "no printed total means undefined, not zero")
	assert.True(t, tot.ComputedSubtotal.Equal(dec("1500.00")))
}

func TestReconcileTotalsNoColumnHeader(t *testing.T) {
	tot := reconcile(
		"ACME TRADERS PVT LTD",
		"Kochi 682001 Ph 98470 12345",
		"1 Copper Wire 8544 10 150.00 1,500.00",
		"Grand Total 1,500.00",
	)

	assert.True(t, tot.ComputedSubtotal.Equal(dec("1500.00")), "vendor block must not leak into the sum")
	require.NotNil(t, tot.Discrepancy)
	assert.True(t, tot.Discrepancy.IsZero())
}

func TestReconcileTotalsPicksLargestTotalRow(t *testing.T) {
	// Several rows carry the word "Total"; the grand total is the largest.
	tot := reconcile(
		"Sl Description HSN Qty Rate Amount",
		"1 Copper Wire 8544 10 150.00 1,500.00",
		"Sub Total 1,500.00",
		"CGST 9% 135.00",
		"SGST 9% 135.00",
		"Total 1,770.00",
	)

	require.NotNil(t, tot.PrintedGrandTotal)
	assert.True(t, tot.PrintedGrandTotal.Equal(dec("1770.00")))
	require.NotNil(t, tot.Discrepancy)
	assert.True(t, tot.Discrepancy.IsZero())
}

func TestReconcileTotalsIncludesLowConfidenceRows(t *testing.T) {
	// The second row only carries an amount, yet it still counts toward the
	// computed sum so the reviewer sees the real gap.
	tot := reconcile(
		"Sl Description HSN Qty Rate Amount",
		"1 Copper Wire 8544 10 150.00 1,500.00",
		"2 Gasket Sheet 850.00",
		"Grand Total 2,350.00",
	)

	assert.True(t, tot.ComputedSubtotal.Equal(dec("2350.00")))
	require.NotNil(t, tot.Discrepancy)
	assert.True(t, tot.Discrepancy.IsZero())
}
