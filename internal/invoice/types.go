// Package invoice converts an unstructured invoice document into a
// structured, validated bill record: vendor identity, header fields, line
// items and reconciled totals, together with a confidence assessment that
// routes uncertain extractions to human review.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

// NormalizedLine is an ordered group of tokens sharing a page and line index,
// plus the derived plain-text join.
type NormalizedLine struct {
	Page   int
	Line   int
	Tokens []extract.Token
	Text   string
}

// MatchStrategy records which pattern tier resolved a header field.
type MatchStrategy string

const (
	StrategyNone       MatchStrategy = "none"
	StrategyLabeled    MatchStrategy = "labeled"
	StrategyPositional MatchStrategy = "positional"
	StrategyFallback   MatchStrategy = "fallback"
)

// VendorCandidate is a scored supplying-party identity.
type VendorCandidate struct {
	Name       string  `json:"name"`
	GSTIN      string  `json:"gstin,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Score      float64 `json:"-"`
	SourceLine int     `json:"-"`
	// KnownVendor is set when the GSTIN matched a reference record.
	KnownVendor bool `json:"-"`
}

// HeaderFields holds the resolved invoice number and date, each tagged with
// the strategy tier that produced it.
type HeaderFields struct {
	InvoiceNo         string        `json:"invoice_no,omitempty"`
	BillDate          *time.Time    `json:"bill_date,omitempty"`
	InvoiceNoStrategy MatchStrategy `json:"-"`
	DateStrategy      MatchStrategy `json:"-"`
}

// LineItem is one parsed row of the goods/services table.
type LineItem struct {
	HSN         string          `json:"hsn,omitempty"`
	Description string          `json:"description"`
	UOM         string          `json:"uom,omitempty"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	// MatchedSKU is the catalog SKU the description resolved to, when the
	// reference lookup produced a strong match.
	MatchedSKU string `json:"matched_sku,omitempty"`
	// RowConfidence is 0..1; rows with missing or inconsistent numeric
	// fields are retained with a reduced value, never dropped.
	RowConfidence float64 `json:"row_confidence"`
	Inconsistent  bool    `json:"inconsistent,omitempty"`
	// numericFields counts how many of qty/rate/amount were actually
	// present on the page (not solved for).
	numericFields int
}

// TotalsSummary cross-checks printed totals against the line-item sum.
// A nil Discrepancy means no printed grand total was found; that is a
// review trigger, not a computed value.
type TotalsSummary struct {
	PrintedSubtotal   *decimal.Decimal `json:"subtotal,omitempty"`
	PrintedTax        *decimal.Decimal `json:"tax,omitempty"`
	PrintedGrandTotal *decimal.Decimal `json:"grand_total,omitempty"`
	ComputedSubtotal  decimal.Decimal  `json:"computed_subtotal"`
	Discrepancy       *decimal.Decimal `json:"discrepancy,omitempty"`
}

// ReviewReason is an enumerated cause for routing an extraction to a human.
// The gate never collapses multiple failures into one generic flag.
type ReviewReason string

const (
	ReasonVendorUnresolved    ReviewReason = "vendor_unresolved"
	ReasonHeaderLowTier       ReviewReason = "header_low_tier"
	ReasonLineItemIncomplete  ReviewReason = "line_item_incomplete"
	ReasonTotalsMismatch      ReviewReason = "totals_mismatch"
	ReasonTotalsMissing       ReviewReason = "totals_missing"
	ReasonLowOCRConfidence    ReviewReason = "low_ocr_confidence"
	ReasonProcessingCancelled ReviewReason = "processing_cancelled"
)

// InvoiceExtraction is the final artifact of one pipeline invocation.
// It is immutable and owned by the caller after return.
type InvoiceExtraction struct {
	Vendor            *VendorCandidate `json:"vendor,omitempty"`
	Header            HeaderFields     `json:"header"`
	LineItems         []LineItem       `json:"line_items"`
	Totals            TotalsSummary    `json:"totals"`
	OverallConfidence float64          `json:"overall_confidence"`
	NeedsReview       bool             `json:"needs_review"`
	ReviewReasons     []ReviewReason   `json:"review_reasons"`
	// Method records which acquisition backend produced the token stream.
	Method string `json:"method,omitempty"`
}

func (x *InvoiceExtraction) addReason(r ReviewReason) {
	for _, have := range x.ReviewReasons {
		if have == r {
			return
		}
	}
	x.ReviewReasons = append(x.ReviewReasons, r)
}
