package store

import (
	"github.com/uthybuilds/Homespired-sub000/events"
)

// Stores bundles every entity store over one shared backend and broadcaster.
type Stores struct {
	Catalog   *CatalogStore
	Cart      *CartStore
	Orders    *OrdersStore
	Requests  *RequestsStore
	Customers *CustomersStore
	Discounts *DiscountsStore
	Settings  *SettingsStore
	Analytics *AnalyticsStore
}

func New(backend Backend, bus *events.Broadcaster) *Stores {
	analytics := &AnalyticsStore{backend: backend}
	return &Stores{
		Catalog:   &CatalogStore{backend: backend, bus: bus},
		Cart:      &CartStore{backend: backend, bus: bus, analytics: analytics},
		Orders:    &OrdersStore{backend: backend, bus: bus},
		Requests:  &RequestsStore{backend: backend, bus: bus},
		Customers: &CustomersStore{backend: backend, bus: bus},
		Discounts: &DiscountsStore{backend: backend, bus: bus},
		Settings:  &SettingsStore{backend: backend, bus: bus},
		Analytics: analytics,
	}
}
