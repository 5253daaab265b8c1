package models

import "time"

// AnalyticsCounters is the singleton usage-counter record. Counters only ever
// go up.
type AnalyticsCounters struct {
	StoreViews     int64      `json:"store_views"`
	CartAdds       int64      `json:"cart_adds"`
	Checkouts      int64      `json:"checkouts"`
	LastCheckoutAt *time.Time `json:"last_checkout_at,omitempty"`
}
