package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func gateFixture() *InvoiceExtraction {
	zero := decimal.Zero
	bd := testNow
	return &InvoiceExtraction{
		Vendor: &VendorCandidate{Name: "ACME TRADERS", GSTIN: "32AAAAA0000A1Z5"},
		Header: HeaderFields{
			InvoiceNo:         "INV-1001",
			BillDate:          &bd,
			InvoiceNoStrategy: StrategyLabeled,
			DateStrategy:      StrategyLabeled,
		},
		LineItems: []LineItem{
			{Description: "Copper Wire", RowConfidence: 0.95, numericFields: 3},
		},
		Totals: TotalsSummary{Discrepancy: &zero},
	}
}

func TestGateCleanExtractionPasses(t *testing.T) {
	x := gateFixture()
	applyGate(x, Config{}.withDefaults(), 0)

	assert.False(t, x.NeedsReview)
	assert.Empty(t, x.ReviewReasons)
	assert.Greater(t, x.OverallConfidence, 0.9)
}

func TestGateUnresolvedVendorForcesReview(t *testing.T) {
	x := gateFixture()
	x.Vendor = nil
	applyGate(x, Config{}.withDefaults(), 0)

	assert.True(t, x.NeedsReview)
	assert.Contains(t, x.ReviewReasons, ReasonVendorUnresolved)
}

func TestGateKnownVendorNeverLowersConfidence(t *testing.T) {
	plain := gateFixture()
	applyGate(plain, Config{}.withDefaults(), 0)

	known := gateFixture()
	known.Vendor.KnownVendor = true
	applyGate(known, Config{}.withDefaults(), 0)

	assert.GreaterOrEqual(t, known.OverallConfidence, plain.OverallConfidence)
}

func TestGateTotalsMismatchForcesReview(t *testing.T) {
	x := gateFixture()
	gap := decimal.NewFromInt(600)
	x.Totals.Discrepancy = &gap
	applyGate(x, Config{}.withDefaults(), 0)

	assert.True(t, x.NeedsReview)
	assert.Contains(t, x.ReviewReasons, ReasonTotalsMismatch)
}

func TestGateMissingTotalsIsItsOwnReason(t *testing.T) {
	x := gateFixture()
	x.Totals.Discrepancy = nil
	applyGate(x, Config{}.withDefaults(), 0)

	assert.True(t, x.NeedsReview)
	assert.Contains(t, x.ReviewReasons, ReasonTotalsMissing)
	assert.NotContains(t, x.ReviewReasons, ReasonTotalsMismatch)
}

func TestGateEmptyNumericRowForcesReview(t *testing.T) {
	x := gateFixture()
	x.LineItems = append(x.LineItems, LineItem{Description: "smudge", RowConfidence: 0.2, Inconsistent: true})
	applyGate(x, Config{}.withDefaults(), 0)

	assert.True(t, x.NeedsReview)
	assert.Contains(t, x.ReviewReasons, ReasonLineItemIncomplete)
}

func TestGateFallbackHeaderTierIsFlagged(t *testing.T) {
	x := gateFixture()
	x.Header.InvoiceNoStrategy = StrategyFallback
	applyGate(x, Config{}.withDefaults(), 0)

	assert.Contains(t, x.ReviewReasons, ReasonHeaderLowTier)
}

func TestGateLowOCRConfidenceIsFlagged(t *testing.T) {
	x := gateFixture()
	applyGate(x, Config{}.withDefaults(), 0.4)

	assert.Contains(t, x.ReviewReasons, ReasonLowOCRConfidence)
}

func TestGateReasonsAccumulate(t *testing.T) {
	x := gateFixture()
	x.Vendor = nil
	x.Totals.Discrepancy = nil
	x.Header.DateStrategy = StrategyNone
	applyGate(x, Config{}.withDefaults(), 0.4)

	assert.Contains(t, x.ReviewReasons, ReasonVendorUnresolved)
	assert.Contains(t, x.ReviewReasons, ReasonTotalsMissing)
	assert.Contains(t, x.ReviewReasons, ReasonHeaderLowTier)
	assert.Contains(t, x.ReviewReasons, ReasonLowOCRConfidence)
}
