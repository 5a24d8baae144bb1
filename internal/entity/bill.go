package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
)

// Bill represents an uploaded purchase bill for data transfer between layers.
type Bill struct {
	ID         uuid.UUID            `json:"id"`
	VendorID   *uuid.UUID           `json:"vendor_id,omitempty"`
	VendorName string               `json:"vendor_name,omitempty"`
	InvoiceNo  string               `json:"invoice_no,omitempty"`
	BillDate   *time.Time           `json:"bill_date,omitempty"`
	Status     constants.BillStatus `json:"status"`

	SourcePath string              `json:"source_path,omitempty"`
	Format     constants.DocFormat `json:"format"`
	Method     string              `json:"method,omitempty"`

	Subtotal   *decimal.Decimal `json:"subtotal,omitempty"`
	Tax        *decimal.Decimal `json:"tax,omitempty"`
	GrandTotal *decimal.Decimal `json:"grand_total,omitempty"`

	Confidence    float64  `json:"confidence"`
	NeedsReview   bool     `json:"needs_review"`
	ReviewReasons []string `json:"review_reasons,omitempty"`

	Lines []*BillLine `json:"lines,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BillLine represents one extracted row of a bill for data transfer between
// layers.
type BillLine struct {
	ID           uuid.UUID       `json:"id"`
	BillID       uuid.UUID       `json:"bill_id"`
	LineNo       int             `json:"line_no"`
	HSN          string          `json:"hsn,omitempty"`
	Description  string          `json:"description"`
	UOM          string          `json:"uom,omitempty"`
	Qty          decimal.Decimal `json:"qty"`
	Rate         decimal.Decimal `json:"rate"`
	Amount       decimal.Decimal `json:"amount"`
	Confidence   float64         `json:"confidence"`
	Inconsistent bool            `json:"inconsistent,omitempty"`
	// MatchedSKU is set when catalog matching resolved this row to a product.
	MatchedSKU string `json:"matched_sku,omitempty"`
}
