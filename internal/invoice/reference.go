package invoice

import "context"

// VendorRecord is a known supplier from reference data.
type VendorRecord struct {
	Name  string
	GSTIN string
}

// ProductRecord is a known catalog product from reference data.
type ProductRecord struct {
	SKU  string
	Name string
}

// ReferenceLookup is the read-only reference-data capability supplied by the
// caller. It is used only to enrich confidence; the pipeline never writes
// through it. Implementations must be safe for concurrent use.
type ReferenceLookup interface {
	FindVendorByGSTIN(ctx context.Context, gstin string) (*VendorRecord, bool)
	FindProductByName(ctx context.Context, name string) (*ProductRecord, bool)
}

// NopReference is a ReferenceLookup with no data behind it.
type NopReference struct{}

func (NopReference) FindVendorByGSTIN(context.Context, string) (*VendorRecord, bool) {
	return nil, false
}

func (NopReference) FindProductByName(context.Context, string) (*ProductRecord, bool) {
	return nil, false
}
