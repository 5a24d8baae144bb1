package invoice

// Component weights for the overall confidence score. They sum to 1.0.
const (
	weightVendor = 0.30
	weightHeader = 0.25
	weightLines  = 0.30
	weightTotals = 0.15
)

// applyGate computes the weighted overall confidence and decides whether the
// extraction needs a human. Every trigger appends its own enumerated reason;
// nothing is collapsed into a generic flag.
func applyGate(x *InvoiceExtraction, cfg Config, ocrConf float32) {
	vendorScore := scoreVendor(x.Vendor)
	headerScore := scoreHeader(x.Header)
	lineScore := scoreLines(x.LineItems)
	totalScore := scoreTotals(x.Totals)

	x.OverallConfidence = weightVendor*vendorScore +
		weightHeader*headerScore +
		weightLines*lineScore +
		weightTotals*totalScore

	if x.Vendor == nil {
		x.addReason(ReasonVendorUnresolved)
	}
	if x.Header.InvoiceNoStrategy == StrategyFallback || x.Header.InvoiceNoStrategy == StrategyNone ||
		x.Header.DateStrategy == StrategyFallback || x.Header.DateStrategy == StrategyNone {
		x.addReason(ReasonHeaderLowTier)
	}
	for _, it := range x.LineItems {
		if it.numericFields <= 1 || it.Inconsistent {
			x.addReason(ReasonLineItemIncomplete)
			break
		}
	}
	switch {
	case x.Totals.Discrepancy == nil:
		x.addReason(ReasonTotalsMissing)
	case !x.Totals.Discrepancy.IsZero():
		x.addReason(ReasonTotalsMismatch)
	}
	if ocrConf > 0 && ocrConf < cfg.OCRConfidenceFloor {
		x.addReason(ReasonLowOCRConfidence)
	}

	if x.ReviewReasons == nil {
		x.ReviewReasons = []ReviewReason{}
	}

	x.NeedsReview = x.OverallConfidence < cfg.ReviewThreshold ||
		x.Vendor == nil ||
		x.Totals.Discrepancy == nil ||
		!x.Totals.Discrepancy.IsZero() ||
		hasEmptyRow(x.LineItems)
}

// scoreVendor: unresolved 0, resolved 0.85, resolved and present in the
// reference catalog 1.0. Enriching reference data can only raise the score.
func scoreVendor(v *VendorCandidate) float64 {
	switch {
	case v == nil:
		return 0
	case v.KnownVendor:
		return 1.0
	default:
		return 0.85
	}
}

// scoreHeader averages the tier quality of the two fields.
func scoreHeader(h HeaderFields) float64 {
	return (tierWeight(h.InvoiceNoStrategy) + tierWeight(h.DateStrategy)) / 2
}

func tierWeight(s MatchStrategy) float64 {
	switch s {
	case StrategyLabeled:
		return 1.0
	case StrategyPositional:
		return 0.75
	case StrategyFallback:
		return 0.5
	default:
		return 0
	}
}

// scoreLines is the fraction of rows parsed with high confidence. A table
// with no rows at all scores zero.
func scoreLines(items []LineItem) float64 {
	if len(items) == 0 {
		return 0
	}
	good := 0
	for _, it := range items {
		if it.RowConfidence >= 0.8 && !it.Inconsistent {
			good++
		}
	}
	return float64(good) / float64(len(items))
}

// scoreTotals: reconciled 1.0, missing 0.25, mismatched 0.
func scoreTotals(t TotalsSummary) float64 {
	switch {
	case t.Discrepancy == nil:
		return 0.25
	case t.Discrepancy.IsZero():
		return 1.0
	default:
		return 0
	}
}

func hasEmptyRow(items []LineItem) bool {
	for _, it := range items {
		if it.numericFields == 0 {
			return true
		}
	}
	return false
}
