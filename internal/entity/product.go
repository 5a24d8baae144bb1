package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog SKU for data transfer between layers.
type Product struct {
	ID        uuid.UUID `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	HSN       string    `json:"hsn,omitempty"`
	UOM       string    `json:"uom,omitempty"`
	Stock     float64   `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
