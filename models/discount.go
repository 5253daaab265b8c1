package models

import "time"

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Discount codes match case-insensitively. Value is a percentage for percent
// type and an absolute amount for fixed type.
type Discount struct {
	Code        string       `json:"code"`
	Type        DiscountType `json:"type"`
	Value       float64      `json:"value"`
	MinSubtotal float64      `json:"min_subtotal,omitempty"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
	Active      bool         `json:"active"`
	CreatedAt   time.Time    `json:"created_at"`
}

type DiscountRequest struct {
	Code        string     `json:"code" binding:"required"`
	Type        string     `json:"type" binding:"required,oneof=percent fixed"`
	Value       float64    `json:"value" binding:"required,min=0"`
	MinSubtotal float64    `json:"min_subtotal" binding:"min=0"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Active      *bool      `json:"active"`
}
