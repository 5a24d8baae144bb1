package repository

import (
	"context"
	"log/slog"

	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/vendor"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/invoice"
)

type VendorRepository interface {
	FindByGSTIN(ctx context.Context, gstin string) (*entity.Vendor, error)
	// UpsertFromCandidate creates the vendor on first sight of its GSTIN and
	// backfills missing contact details on subsequent bills.
	UpsertFromCandidate(ctx context.Context, cand *invoice.VendorCandidate) (*entity.Vendor, error)
	List(ctx context.Context) ([]*entity.Vendor, error)
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{client: client, logger: logger}
}

func (r *vendorRepository) FindByGSTIN(ctx context.Context, gstin string) (*entity.Vendor, error) {
	v, err := r.client.Vendor.Query().Where(vendor.Gstin(gstin)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to query vendor", "gstin", gstin, "error", err)
		return nil, err
	}
	return toVendor(v), nil
}

func (r *vendorRepository) UpsertFromCandidate(ctx context.Context, cand *invoice.VendorCandidate) (*entity.Vendor, error) {
	existing, err := r.client.Vendor.Query().Where(vendor.Gstin(cand.GSTIN)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to query vendor", "gstin", cand.GSTIN, "error", err)
		return nil, err
	}

	if existing == nil {
		created, err := r.client.Vendor.Create().
			SetName(cand.Name).
			SetGstin(cand.GSTIN).
			SetEmail(cand.Email).
			SetPhone(cand.Phone).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to create vendor", "gstin", cand.GSTIN, "error", err)
			return nil, err
		}
		r.logger.Info("vendor created", "vendor_id", created.ID, "gstin", cand.GSTIN)
		return toVendor(created), nil
	}

	upd := existing.Update()
	if existing.Email == "" && cand.Email != "" {
		upd = upd.SetEmail(cand.Email)
	}
	if existing.Phone == "" && cand.Phone != "" {
		upd = upd.SetPhone(cand.Phone)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	return toVendor(updated), nil
}

func (r *vendorRepository) List(ctx context.Context) ([]*entity.Vendor, error) {
	vs, err := r.client.Vendor.Query().Order(vendor.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list vendors", "error", err)
		return nil, err
	}
	out := make([]*entity.Vendor, len(vs))
	for i, v := range vs {
		out[i] = toVendor(v)
	}
	return out, nil
}
