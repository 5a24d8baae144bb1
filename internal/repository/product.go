package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent"
	"github.com/Alan-K-Biju-7/waresys-mvp/gen/ent/product"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
)

type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) (*entity.Product, error)
	// AddStock increments the stock level; negative deltas draw down.
	AddStock(ctx context.Context, id uuid.UUID, delta float64) error
}

type productRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProductRepository(client *ent.Client, logger *slog.Logger) ProductRepository {
	return &productRepository{client: client, logger: logger}
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	ps, err := r.client.Product.Query().Order(product.BySku()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list products", "error", err)
		return nil, err
	}
	out := make([]*entity.Product, len(ps))
	for i, p := range ps {
		out[i] = toProduct(p)
	}
	return out, nil
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	p, err := r.client.Product.Query().Where(product.Sku(sku)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toProduct(p), nil
}

func (r *productRepository) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	created, err := r.client.Product.Create().
		SetSku(p.SKU).
		SetName(p.Name).
		SetHsn(p.HSN).
		SetUom(p.UOM).
		SetStock(p.Stock).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create product", "sku", p.SKU, "error", err)
		return nil, err
	}
	return toProduct(created), nil
}

func (r *productRepository) AddStock(ctx context.Context, id uuid.UUID, delta float64) error {
	err := r.client.Product.UpdateOneID(id).AddStock(delta).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to adjust stock", "product_id", id, "delta", delta, "error", err)
	}
	return err
}
