package invoice

import (
	"context"
	"log/slog"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
)

// Pipeline runs the full document-to-bill extraction sequence. Construct it
// once and reuse it; it is safe for concurrent Extract calls.
type Pipeline struct {
	cfg       Config
	extractor extract.TextExtractor
	ref       ReferenceLookup
	logger    *slog.Logger
}

func NewPipeline(cfg Config, ex extract.TextExtractor, ref ReferenceLookup, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if ref == nil {
		ref = NopReference{}
	}
	return &Pipeline{cfg: cfg.withDefaults(), extractor: ex, ref: ref, logger: logger}
}

// Extract converts a raw document into a structured bill extraction.
//
// Terminal failures (unsupported format, corrupt or empty documents) return
// an *extract.AcquisitionError and no result. All other uncertainty degrades
// confidence and surfaces as review reasons instead of failing. Context
// cancellation after acquisition returns the partial extraction flagged for
// review rather than discarding completed work.
func (p *Pipeline) Extract(ctx context.Context, doc extract.RawDocument) (*InvoiceExtraction, error) {
	text, err := p.acquire(ctx, doc)
	if err != nil {
		return nil, err
	}
	if len(text.Tokens) == 0 {
		return nil, extract.NewAcquisitionError(extract.ReasonEmptyDocument, nil)
	}

	p.logger.Debug("text acquired",
		"method", text.Method,
		"pages", text.Pages,
		"tokens", len(text.Tokens),
		"confidence", text.Confidence)

	lines := Normalize(text.Tokens)
	x := &InvoiceExtraction{Method: text.Method, LineItems: []LineItem{}}

	if cancelled(ctx) {
		return p.abandon(x), nil
	}

	x.Vendor = identifyVendor(lines, p.cfg.VendorScanLines)
	if x.Vendor != nil {
		if rec, ok := p.ref.FindVendorByGSTIN(ctx, x.Vendor.GSTIN); ok {
			x.Vendor.KnownVendor = true
			if rec.Name != "" {
				x.Vendor.Name = rec.Name
			}
		}
	}

	stopLine := firstItemRowIndex(lines)
	x.Header = extractHeader(lines, stopLine, p.cfg.Now())
	x.LineItems = extractLineItems(lines)
	p.enrichLineItems(ctx, x.LineItems)

	if cancelled(ctx) {
		return p.abandon(x), nil
	}

	x.Totals = reconcileTotals(lines, x.LineItems, p.cfg.AbsTolerance, p.cfg.RelTolerance)

	var ocrConf float32
	if text.Method != "pdf-text" {
		ocrConf = text.Confidence
	}
	applyGate(x, p.cfg, ocrConf)

	p.logger.Info("extraction complete",
		"vendor_resolved", x.Vendor != nil,
		"invoice_no", x.Header.InvoiceNo,
		"line_items", len(x.LineItems),
		"confidence", x.OverallConfidence,
		"needs_review", x.NeedsReview)
	return x, nil
}

// acquire picks the text backend: the embedded text layer when its character
// density says the PDF is digital, optical recognition otherwise.
func (p *Pipeline) acquire(ctx context.Context, doc extract.RawDocument) (extract.DocumentText, error) {
	if doc.Format == constants.PDF {
		text, err := p.extractor.ExtractTextLayer(ctx, doc)
		if err == nil && text.PageChars() >= p.cfg.MinCharsPerPage {
			return text, nil
		}
		if err != nil {
			if ae, ok := extract.IsAcquisitionError(err); ok && ae.Reason == extract.ReasonUnsupportedFormat {
				return extract.DocumentText{}, err
			}
			p.logger.Warn("text layer unavailable, falling back to ocr", "error", err)
		} else {
			p.logger.Debug("text layer too sparse, treating as scanned",
				"chars_per_page", text.PageChars())
		}
	}
	return p.extractor.ExtractViaOCR(ctx, doc)
}

// abandon finalizes a partially built extraction after cancellation. The
// result is always routed to review.
func (p *Pipeline) abandon(x *InvoiceExtraction) *InvoiceExtraction {
	x.addReason(ReasonProcessingCancelled)
	x.NeedsReview = true
	x.OverallConfidence = 0
	p.logger.Warn("extraction cancelled, returning partial result")
	return x
}

func cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// enrichLineItems resolves row descriptions against the reference catalog.
// A strong hit pins the SKU to the row and lifts the confidence of rows
// whose numerics were solved rather than read off the page.
func (p *Pipeline) enrichLineItems(ctx context.Context, items []LineItem) {
	for i := range items {
		it := &items[i]
		if it.Description == "" {
			continue
		}
		rec, ok := p.ref.FindProductByName(ctx, it.Description)
		if !ok {
			continue
		}
		it.MatchedSKU = rec.SKU
		if !it.Inconsistent && it.RowConfidence < 0.9 {
			it.RowConfidence = 0.9
		}
	}
}
