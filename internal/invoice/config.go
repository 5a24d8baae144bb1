package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config holds the pipeline's tunable heuristics. The tolerance values are
// calibration, not contract; defaults match the observed behavior on Indian
// GST tax invoices.
type Config struct {
	// MinCharsPerPage is the text-layer density below which a PDF is
	// treated as scanned and routed through optical recognition.
	MinCharsPerPage int // default 50

	// VendorScanLines caps how many page-1 lines the vendor identifier
	// inspects. The scan never extends past the top third of page 1.
	VendorScanLines int // default 35

	// AbsTolerance and RelTolerance bound numeric equality when
	// reconciling totals: a difference within max(abs, rel*magnitude)
	// counts as equal.
	AbsTolerance decimal.Decimal // default 1.00
	RelTolerance float64         // default 0.03

	// ReviewThreshold routes extractions below this overall confidence
	// to human review.
	ReviewThreshold float64 // default 0.70

	// OCRConfidenceFloor marks whole-document recognition below this
	// mean confidence for review.
	OCRConfidenceFloor float32 // default 0.55

	// Now supplies the current date for two-digit-year resolution.
	// Injected so identical inputs yield identical outputs in tests.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.MinCharsPerPage <= 0 {
		c.MinCharsPerPage = 50
	}
	if c.VendorScanLines <= 0 {
		c.VendorScanLines = 35
	}
	if c.AbsTolerance.IsZero() {
		c.AbsTolerance = decimal.NewFromInt(1)
	}
	if c.RelTolerance <= 0 {
		c.RelTolerance = 0.03
	}
	if c.ReviewThreshold <= 0 {
		c.ReviewThreshold = 0.70
	}
	if c.OCRConfidenceFloor <= 0 {
		c.OCRConfidenceFloor = 0.55
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
