package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExtractLineItemsFullRows(t *testing.T) {
	items := extractLineItems(docLines(sampleInvoice...))

	require.Len(t, items, 2)

	assert.Equal(t, "Copper Wire", items[0].Description)
	assert.Equal(t, "8544", items[0].HSN)
	assert.True(t, items[0].Qty.Equal(dec("10")))
	assert.True(t, items[0].Rate.Equal(dec("150.00")))
	assert.True(t, items[0].Amount.Equal(dec("1500.00")))
	assert.False(t, items[0].Inconsistent)
	assert.GreaterOrEqual(t, items[0].RowConfidence, 0.9)

	assert.Equal(t, "Switch Board", items[1].Description)
	assert.True(t, items[1].Amount.Equal(dec("1000.00")))
}

func TestExtractLineItemsSolvesMissingAmount(t *testing.T) {
	items := extractLineItems(docLines(
		"Sl Description HSN Qty Rate Amount",
		"1 Hex Bolt 7318 12 8.50",
		"Total 102.00",
	))

	require.Len(t, items, 1)
	assert.True(t, items[0].Amount.Equal(dec("102.00")), "amount = qty*rate")
	assert.False(t, items[0].Inconsistent)
	assert.Less(t, items[0].RowConfidence, 0.8, "a solved amount was never read off the page")
}

func TestExtractLineItemsRetainsUnreadableRows(t *testing.T) {
	items := extractLineItems(docLines(
		"Sl Description HSN Qty Rate Amount",
		"1 Gasket Sheet 850.00",
		"Total 850.00",
	))

	require.Len(t, items, 1)
	assert.True(t, items[0].Inconsistent)
	assert.InDelta(t, 0.2, items[0].RowConfidence, 0.001)
}

func TestExtractLineItemsFlagsInconsistentArithmetic(t *testing.T) {
	items := extractLineItems(docLines(
		"Sl Description HSN Qty Rate Amount",
		"1 Valve Kit 8481 3 100.00 999.00",
		"Total 999.00",
	))

	require.Len(t, items, 1)
	assert.True(t, items[0].Inconsistent, "3*100 is nowhere near 999")
	assert.True(t, items[0].Amount.Equal(dec("999.00")), "printed value kept, not discarded")
}

func TestExtractLineItemsRepairsSwappedColumns(t *testing.T) {
	items := extractLineItems(docLines(
		"Sl Description HSN Qty Rate Amount",
		"1 Angle Bracket 7308 4 240.00 60.00",
		"Total 240.00",
	))

	require.Len(t, items, 1)
	assert.False(t, items[0].Inconsistent)
	assert.True(t, items[0].Rate.Equal(dec("60.00")))
	assert.True(t, items[0].Amount.Equal(dec("240.00")))
}

func TestExtractLineItemsMergesWrappedDescriptions(t *testing.T) {
	items := extractLineItems(docLines(
		"Sl Description HSN Qty Rate Amount",
		"1 Submersible Pump 8413 1 4,500.00 4,500.00",
		"with control panel",
		"2 Foot Valve 8481 1 350.00 350.00",
		"Total 4,850.00",
	))

	require.Len(t, items, 2)
	assert.Equal(t, "Submersible Pump with control panel", items[0].Description)
	assert.Equal(t, "Foot Valve", items[1].Description)
}

func TestExtractLineItemsCapturesUOM(t *testing.T) {
	items := extractLineItems(docLines(
		"Sl Description HSN Qty Rate Amount",
		"1 PVC Pipe 3917 10 NOS 120.00 1,200.00",
		"Total 1,200.00",
	))

	require.Len(t, items, 1)
	assert.Equal(t, "NOS", items[0].UOM)
	assert.True(t, items[0].Qty.Equal(dec("10")))
}

func TestExtractLineItemsNoColumnHeader(t *testing.T) {
	// The column header row did not survive recognition. The table must
	// anchor on the first genuine goods row, not on the vendor block: the
	// address line is full of number-shaped tokens (pincode, phone) that
	// would otherwise parse into a fabricated high-confidence row.
	items := extractLineItems(docLines(
		"ACME TRADERS PVT LTD",
		"Kochi 682001 Ph 98470 12345",
		"1 Copper Wire 8544 10 150.00 1,500.00",
		"Grand Total 1,500.00",
	))

	require.Len(t, items, 1)
	assert.Equal(t, "Copper Wire", items[0].Description)
	assert.Equal(t, "8544", items[0].HSN)
	assert.True(t, items[0].Amount.Equal(dec("1500.00")))
}

func TestExtractLineItemsNoTableYieldsNothing(t *testing.T) {
	items := extractLineItems(docLines(
		"ACME TRADERS PVT LTD",
		"Kochi 682001 Ph 98470 12345",
	))

	assert.Empty(t, items)
}

func TestExtractLineItemsSkipsBoilerplate(t *testing.T) {
	items := extractLineItems(docLines(
		"Sl Description HSN Qty Rate Amount",
		"1 Copper Wire 8544 10 150.00 1,500.00",
		"Declaration: goods once sold will not be taken back",
		"Total 1,500.00",
	))

	require.Len(t, items, 1)
}
