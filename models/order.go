package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderLine is a frozen copy of a cart line at checkout. It never references
// the live product, so later catalog edits cannot change a placed order.
type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// CustomerSnapshot is the contact block frozen into orders and requests.
type CustomerSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// Order is created at checkout and mutated only through status transitions.
// Orders are never deleted.
type Order struct {
	ID             uuid.UUID        `json:"id"`
	OrderNumber    string           `json:"order_number"`
	Status         OrderStatus      `json:"status"`
	Items          []OrderLine      `json:"items"`
	Subtotal       float64          `json:"subtotal"`
	ShippingCost   float64          `json:"shipping_cost"`
	DiscountCode   string           `json:"discount_code,omitempty"`
	DiscountAmount float64          `json:"discount_amount"`
	Total          float64          `json:"total"`
	ZoneID         string           `json:"zone_id"`
	ZoneLabel      string           `json:"zone_label"`
	Customer       CustomerSnapshot `json:"customer"`
	ProofURL       string           `json:"proof_url"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	ConfirmedAt    *time.Time       `json:"confirmed_at,omitempty"`
	ShippedAt      *time.Time       `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time       `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time       `json:"cancelled_at,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
}
