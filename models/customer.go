package models

import "time"

// Customer is keyed by lower-cased email. Upserted on every checkout, service
// request and profile edit with "non-empty incoming field wins" merge rules.
type Customer struct {
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	LastOrderAt *time.Time `json:"last_order_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
