package server

import (
	"github.com/shopspring/decimal"

	waresyspb "github.com/Alan-K-Biju-7/waresys-mvp/gen/proto/waresys/v1"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
)

func toPBBill(b *entity.Bill) *waresyspb.Bill {
	pb := &waresyspb.Bill{
		Id:            b.ID.String(),
		VendorName:    b.VendorName,
		InvoiceNo:     b.InvoiceNo,
		Status:        string(b.Status),
		Method:        b.Method,
		Subtotal:      decString(b.Subtotal),
		Tax:           decString(b.Tax),
		GrandTotal:    decString(b.GrandTotal),
		Confidence:    b.Confidence,
		NeedsReview:   b.NeedsReview,
		ReviewReasons: b.ReviewReasons,
	}
	if b.VendorID != nil {
		pb.VendorId = b.VendorID.String()
	}
	if b.BillDate != nil {
		pb.BillDate = b.BillDate.Format("2006-01-02")
	}
	for _, ln := range b.Lines {
		pb.Lines = append(pb.Lines, toPBBillLine(ln))
	}
	return pb
}

func toPBBillLine(ln *entity.BillLine) *waresyspb.BillLine {
	return &waresyspb.BillLine{
		LineNo:       int32(ln.LineNo),
		Hsn:          ln.HSN,
		Description:  ln.Description,
		Uom:          ln.UOM,
		Qty:          ln.Qty.String(),
		Rate:         ln.Rate.String(),
		Amount:       ln.Amount.String(),
		Confidence:   ln.Confidence,
		Inconsistent: ln.Inconsistent,
		MatchedSku:   ln.MatchedSKU,
	}
}

func decString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
