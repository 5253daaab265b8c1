package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a denormalized copy of the product at the time it was added,
// one line per product id. The copy means a later catalog edit does not
// silently reprice a cart; the quantity cap is still checked against the
// *current* product inventory on every mutation.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartMeta is persisted alongside the cart for the abandonment signal.
type CartMeta struct {
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
