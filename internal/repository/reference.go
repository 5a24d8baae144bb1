package repository

import (
	"context"
	"log/slog"

	"github.com/Alan-K-Biju-7/waresys-mvp/internal/invoice"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/match"
)

// Reference adapts the vendor and product repositories to the read-only
// lookup the extraction pipeline consumes.
type Reference struct {
	vendors  VendorRepository
	products ProductRepository
	logger   *slog.Logger
}

func NewReference(vendors VendorRepository, products ProductRepository, logger *slog.Logger) *Reference {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reference{vendors: vendors, products: products, logger: logger}
}

func (r *Reference) FindVendorByGSTIN(ctx context.Context, gstin string) (*invoice.VendorRecord, bool) {
	if gstin == "" {
		return nil, false
	}
	v, err := r.vendors.FindByGSTIN(ctx, gstin)
	if err != nil || v == nil {
		return nil, false
	}
	return &invoice.VendorRecord{Name: v.Name, GSTIN: v.GSTIN}, true
}

func (r *Reference) FindProductByName(ctx context.Context, name string) (*invoice.ProductRecord, bool) {
	products, err := r.products.List(ctx)
	if err != nil || len(products) == 0 {
		return nil, false
	}

	candidates := make([]match.Candidate, len(products))
	for i, p := range products {
		candidates[i] = match.Candidate{SKU: p.SKU, Name: p.Name}
	}
	hit, ok := match.NewMatcher(candidates, 0).Best(name)
	if !ok {
		return nil, false
	}
	r.logger.Debug("catalog match", "description", name, "sku", hit.SKU, "score", hit.Score)
	return &invoice.ProductRecord{SKU: hit.SKU, Name: hit.Name}, true
}
