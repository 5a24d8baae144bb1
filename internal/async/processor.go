package async

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/extract"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/invoice"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/repository"
)

// Processor runs the extraction pipeline for one registered bill: load the
// source document, extract, resolve the vendor, persist the matched rows.
type Processor struct {
	bills    repository.BillRepository
	vendors  repository.VendorRepository
	products repository.ProductRepository
	pipeline *invoice.Pipeline
	logger   *slog.Logger
}

func NewProcessor(
	bills repository.BillRepository,
	vendors repository.VendorRepository,
	products repository.ProductRepository,
	pipeline *invoice.Pipeline,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		bills:    bills,
		vendors:  vendors,
		products: products,
		pipeline: pipeline,
		logger:   logger,
	}
}

// ProcessBill drives one bill through the pipeline. Terminal acquisition
// failures mark the bill FAILED and return the error; everything else lands
// as a PROCESSED bill, flagged for review when confidence demands it.
func (p *Processor) ProcessBill(ctx context.Context, billID uuid.UUID) (*entity.Bill, error) {
	b, err := p.bills.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if err := p.bills.MarkProcessing(ctx, billID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.SourcePath)
	if err != nil {
		p.logger.Error("failed to read source document", "bill_id", billID, "path", b.SourcePath, "error", err)
		_ = p.bills.MarkFailed(ctx, billID, string(extract.ReasonCorruptDocument))
		return nil, fmt.Errorf("read source document: %w", err)
	}

	x, err := p.pipeline.Extract(ctx, extract.RawDocument{Data: data, Format: b.Format})
	if err != nil {
		reason := "extraction_failed"
		if ae, ok := extract.IsAcquisitionError(err); ok {
			reason = string(ae.Reason)
		}
		_ = p.bills.MarkFailed(ctx, billID, reason)
		return nil, err
	}

	if raw, merr := json.Marshal(x); merr == nil {
		if verr := invoice.ValidateExtractionJSON(raw); verr != nil {
			// Contract drift is a bug, not a reason to drop the bill.
			p.logger.Warn("extraction violates output contract", "bill_id", billID, "error", verr)
		}
	}

	var vendorID *uuid.UUID
	if x.Vendor != nil && x.Vendor.GSTIN != "" {
		v, err := p.vendors.UpsertFromCandidate(ctx, x.Vendor)
		if err != nil {
			p.logger.Warn("vendor upsert failed, keeping bill unlinked", "bill_id", billID, "error", err)
		} else {
			vendorID = &v.ID
		}
	}

	skus, productIDs := p.matchLines(ctx, x.LineItems)

	saved, err := p.bills.SaveExtraction(ctx, &repository.SaveExtractionRequest{
		BillID:      billID,
		Extraction:  x,
		VendorID:    vendorID,
		MatchedSKUs: skus,
		ProductIDs:  productIDs,
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("bill processed",
		"bill_id", billID,
		"status", constants.BillStatusProcessed,
		"needs_review", saved.NeedsReview,
		"confidence", saved.Confidence)
	return saved, nil
}

// matchLines resolves the catalog SKUs the pipeline pinned to each row into
// product IDs. The fuzzy matching itself happens inside the pipeline through
// the reference lookup; this only maps its results onto stored rows. Both
// slices run parallel to items; unmatched rows stay empty.
func (p *Processor) matchLines(ctx context.Context, items []invoice.LineItem) ([]string, []*uuid.UUID) {
	skus := make([]string, len(items))
	productIDs := make([]*uuid.UUID, len(items))

	matched := false
	for i, item := range items {
		skus[i] = item.MatchedSKU
		if item.MatchedSKU != "" {
			matched = true
		}
	}
	if !matched {
		return skus, productIDs
	}

	products, err := p.products.List(ctx)
	if err != nil {
		p.logger.Warn("failed to load product catalog, keeping rows unlinked", "error", err)
		return skus, productIDs
	}
	bySKU := make(map[string]uuid.UUID, len(products))
	for _, prod := range products {
		bySKU[prod.SKU] = prod.ID
	}

	for i := range items {
		if skus[i] == "" {
			continue
		}
		if id, ok := bySKU[skus[i]]; ok {
			pid := id
			productIDs[i] = &pid
		}
	}
	return skus, productIDs
}
