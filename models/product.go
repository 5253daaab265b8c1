package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Inventory is the only field mutated outside the
// admin edit flow (checkout decrements, cancellation restocks).
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	Inventory   int       `json:"inventory"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TracksInventory reports whether stock is enforced for this product.
// Inventory 0 means "not tracked" for cart purposes; an explicit sold-out
// state is an inventory that was tracked and has been decremented to 0 by
// orders, which the storefront reads off the order history, not this flag.
func (p Product) TracksInventory() bool {
	return p.Inventory > 0
}

type ProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"min=0"`
	Category    string  `json:"category" form:"category"`
	ImageURL    string  `json:"image_url" form:"image_url"`
	Description string  `json:"description" form:"description"`
	Inventory   int     `json:"inventory" form:"inventory" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
	Inventory   *int     `json:"inventory" binding:"omitempty,min=0"`
}
