package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/bill"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/billline"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/common"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/invoice"
)

// CreateBillRequest wraps parameters for registering an uploaded document.
type CreateBillRequest struct {
	SourcePath string
	Format     constants.DocFormat
}

// SaveExtractionRequest carries a finished pipeline result into storage.
// MatchedSKUs and ProductIDs run parallel to Extraction.LineItems; empty
// entries mean the row did not resolve against the catalog.
type SaveExtractionRequest struct {
	BillID      uuid.UUID
	Extraction  *invoice.InvoiceExtraction
	VendorID    *uuid.UUID
	MatchedSKUs []string
	ProductIDs  []*uuid.UUID
}

type BillRepository interface {
	Create(ctx context.Context, req *CreateBillRequest) (*entity.Bill, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	SaveExtraction(ctx context.Context, req *SaveExtractionRequest) (*entity.Bill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	List(ctx context.Context, status *constants.BillStatus, limit int) ([]*entity.Bill, error)
	ListReviewQueue(ctx context.Context) ([]*entity.Bill, error)
	// Confirm marks a processed bill as accepted and applies its matched
	// lines to product stock in one transaction.
	Confirm(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
}

type billRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBillRepository(client *ent.Client, logger *slog.Logger) BillRepository {
	return &billRepository{client: client, logger: logger}
}

func (r *billRepository) Create(ctx context.Context, req *CreateBillRequest) (*entity.Bill, error) {
	b, err := r.client.Bill.Create().
		SetSourcePath(req.SourcePath).
		SetFormat(bill.Format(req.Format)).
		SetStatus(bill.StatusUPLOADED).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create bill", "source_path", req.SourcePath, "error", err)
		return nil, err
	}
	r.logger.Info("bill registered", "bill_id", b.ID, "format", req.Format)
	return toBill(b), nil
}

func (r *billRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.client.Bill.UpdateOneID(id).
		SetStatus(bill.StatusPROCESSING).
		Exec(ctx)
}

func (r *billRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	err := r.client.Bill.UpdateOneID(id).
		SetStatus(bill.StatusFAILED).
		SetReviewReasons([]string{reason}).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark bill failed", "bill_id", id, "error", err)
	}
	return err
}

func (r *billRepository) SaveExtraction(ctx context.Context, req *SaveExtractionRequest) (*entity.Bill, error) {
	x := req.Extraction

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	upd := tx.Bill.UpdateOneID(req.BillID).
		SetStatus(bill.StatusPROCESSED).
		SetMethod(x.Method).
		SetConfidence(x.OverallConfidence).
		SetNeedsReview(x.NeedsReview).
		SetReviewReasons(reasonStrings(x.ReviewReasons)).
		SetNillableSubtotal(floatPtr(x.Totals.PrintedSubtotal)).
		SetNillableTax(floatPtr(x.Totals.PrintedTax)).
		SetNillableGrandTotal(floatPtr(x.Totals.PrintedGrandTotal))

	if x.Vendor != nil {
		upd = upd.SetVendorName(x.Vendor.Name)
		if req.VendorID != nil {
			upd = upd.SetVendorID(*req.VendorID)
		}
	}
	if x.Header.InvoiceNo != "" {
		upd = upd.SetInvoiceNo(x.Header.InvoiceNo)
	}
	if x.Header.BillDate != nil {
		upd = upd.SetBillDate(*x.Header.BillDate)
	}
	if artifact := extractionArtifact(x); artifact != nil {
		upd = upd.SetExtraction(artifact)
	}

	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("failed to save extraction", "bill_id", req.BillID, "error", err)
		return nil, err
	}

	// Re-extraction replaces prior rows wholesale.
	if _, err := tx.BillLine.Delete().Where(billline.BillID(req.BillID)).Exec(ctx); err != nil {
		return nil, err
	}
	for i, item := range x.LineItems {
		qty, _ := item.Qty.Float64()
		rate, _ := item.Rate.Float64()
		amount, _ := item.Amount.Float64()

		create := tx.BillLine.Create().
			SetBillID(req.BillID).
			SetLineNo(i + 1).
			SetHsn(item.HSN).
			SetDescription(item.Description).
			SetUom(item.UOM).
			SetQty(qty).
			SetRate(rate).
			SetAmount(amount).
			SetConfidence(item.RowConfidence).
			SetInconsistent(item.Inconsistent)
		if i < len(req.MatchedSKUs) && req.MatchedSKUs[i] != "" {
			create = create.SetMatchedSku(req.MatchedSKUs[i])
		}
		if i < len(req.ProductIDs) && req.ProductIDs[i] != nil {
			create = create.SetProductID(*req.ProductIDs[i])
		}
		if err := create.Exec(ctx); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, req.BillID)
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	b, err := r.client.Bill.Query().
		Where(bill.ID(id)).
		WithLines(func(q *ent.BillLineQuery) { q.Order(billline.ByLineNo()) }).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toBill(b), nil
}

func (r *billRepository) List(ctx context.Context, status *constants.BillStatus, limit int) ([]*entity.Bill, error) {
	q := r.client.Bill.Query()
	if status != nil {
		q = q.Where(bill.StatusEQ(bill.Status(*status)))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	bs, err := q.Order(bill.ByCreatedAt(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list bills", "error", err)
		return nil, err
	}
	out := make([]*entity.Bill, len(bs))
	for i, b := range bs {
		out[i] = toBill(b)
	}
	return out, nil
}

func (r *billRepository) ListReviewQueue(ctx context.Context) ([]*entity.Bill, error) {
	bs, err := r.client.Bill.Query().
		Where(bill.NeedsReview(true), bill.StatusEQ(bill.StatusPROCESSED)).
		Order(bill.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list review queue", "error", err)
		return nil, err
	}
	out := make([]*entity.Bill, len(bs))
	for i, b := range bs {
		out[i] = toBill(b)
	}
	return out, nil
}

func (r *billRepository) Confirm(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	b, err := tx.Bill.Query().
		Where(bill.ID(id)).
		WithLines().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if b.Status != bill.StatusPROCESSED {
		return nil, common.NewAppError("BILL_NOT_PROCESSED",
			"only processed bills can be confirmed", common.ErrConflict)
	}

	for _, ln := range b.Edges.Lines {
		if ln.ProductID == nil {
			continue
		}
		if err := tx.Product.UpdateOneID(*ln.ProductID).AddStock(ln.Qty).Exec(ctx); err != nil {
			r.logger.Error("failed to apply stock", "bill_id", id, "product_id", *ln.ProductID, "error", err)
			return nil, err
		}
	}

	if err := tx.Bill.UpdateOneID(id).SetStatus(bill.StatusCONFIRMED).Exec(ctx); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("bill confirmed", "bill_id", id, "lines", len(b.Edges.Lines))
	return r.GetByID(ctx, id)
}

func reasonStrings(reasons []invoice.ReviewReason) []string {
	out := make([]string, len(reasons))
	for i, reason := range reasons {
		out[i] = string(reason)
	}
	return out
}

// extractionArtifact round-trips the result through JSON so the stored
// artifact is exactly what the API contract validates.
func extractionArtifact(x *invoice.InvoiceExtraction) map[string]any {
	raw, err := json.Marshal(x)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
