package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
)

func toBill(b *ent.Bill) *entity.Bill {
	out := &entity.Bill{
		ID:            b.ID,
		VendorID:      b.VendorID,
		VendorName:    b.VendorName,
		InvoiceNo:     b.InvoiceNo,
		BillDate:      b.BillDate,
		Status:        constants.BillStatus(b.Status),
		SourcePath:    b.SourcePath,
		Format:        constants.DocFormat(b.Format),
		Method:        b.Method,
		Subtotal:      decPtr(b.Subtotal),
		Tax:           decPtr(b.Tax),
		GrandTotal:    decPtr(b.GrandTotal),
		Confidence:    b.Confidence,
		NeedsReview:   b.NeedsReview,
		ReviewReasons: b.ReviewReasons,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	for _, ln := range b.Edges.Lines {
		out.Lines = append(out.Lines, toBillLine(ln))
	}
	return out
}

func toBillLine(ln *ent.BillLine) *entity.BillLine {
	return &entity.BillLine{
		ID:           ln.ID,
		BillID:       ln.BillID,
		LineNo:       ln.LineNo,
		HSN:          ln.Hsn,
		Description:  ln.Description,
		UOM:          ln.Uom,
		Qty:          decimal.NewFromFloat(ln.Qty),
		Rate:         decimal.NewFromFloat(ln.Rate),
		Amount:       decimal.NewFromFloat(ln.Amount),
		Confidence:   ln.Confidence,
		Inconsistent: ln.Inconsistent,
		MatchedSKU:   ln.MatchedSku,
	}
}

func toVendor(v *ent.Vendor) *entity.Vendor {
	return &entity.Vendor{
		ID:        v.ID,
		Name:      v.Name,
		GSTIN:     v.Gstin,
		Email:     v.Email,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toProduct(p *ent.Product) *entity.Product {
	return &entity.Product{
		ID:        p.ID,
		SKU:       p.Sku,
		Name:      p.Name,
		HSN:       p.Hsn,
		UOM:       p.Uom,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func decPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func floatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}
