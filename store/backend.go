// Package store holds the persistence adapter and the typed entity stores
// built on top of it. Every store delegates reads and writes to a Backend
// chosen once at startup, so business logic never branches on where data
// lives.
package store

// EntityKey names one persisted collection or singleton.
type EntityKey string

const (
	KeyCatalog   EntityKey = "catalog"
	KeyCart      EntityKey = "cart"
	KeyCartMeta  EntityKey = "cart_meta"
	KeyOrders    EntityKey = "orders"
	KeyRequests  EntityKey = "requests"
	KeyCustomers EntityKey = "customers"
	KeyDiscounts EntityKey = "discounts"
	KeySettings  EntityKey = "settings"
	KeyAnalytics EntityKey = "analytics"
	KeyCounters  EntityKey = "counters"
)

// Backend is the persistence strategy. Load reports whether the key had a
// stored value; callers fall back to their defaults when it did not.
//
// Save returns a detached completion handle rather than an error: writes are
// best-effort asynchronous replication by contract. Storefront callers drop
// the handle (fire-and-forget); admin edit flows wait on it so a failed
// remote save is surfaced to the administrator.
type Backend interface {
	Load(key EntityKey, out any) (bool, error)
	Save(key EntityKey, value any) <-chan error

	// SetIdentity scopes the cart to an authenticated identity. The local
	// backend is device-scoped already and ignores it.
	SetIdentity(identity string)
}

// resolved wraps an already-known outcome in a Save-style handle.
func resolved(err error) <-chan error {
	ch := make(chan error, 1)
	ch <- err
	close(ch)
	return ch
}

// Wait blocks on a save handle. Admin edit flows use it so a failed remote
// save reaches the administrator instead of vanishing.
func Wait(done <-chan error) error {
	if done == nil {
		return nil
	}
	return <-done
}
