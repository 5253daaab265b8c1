package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/models"
)

// AbandonedAfter is how long a non-empty cart may sit untouched before the
// storefront nudges the customer. A signal only, nothing acts on it.
const AbandonedAfter = 24 * time.Hour

// CartStore is the cart engine: one denormalized line per product, newest
// first, quantities capped at current inventory whenever stock is tracked.
type CartStore struct {
	mu        sync.Mutex
	backend   Backend
	bus       *events.Broadcaster
	analytics *AnalyticsStore
}

func (s *CartStore) load() ([]models.CartItem, error) {
	var items []models.CartItem
	if _, err := s.backend.Load(KeyCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartStore) persist(items []models.CartItem) {
	// Cart writes are fire-and-forget; the handle is intentionally dropped.
	s.backend.Save(KeyCart, items)
	s.backend.Save(KeyCartMeta, models.CartMeta{UpdatedAt: time.Now().UTC()})
	s.bus.Publish(events.TopicCartChanged)
}

// Items returns the cart, most recently added first.
func (s *CartStore) Items() ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add puts one unit of the product in the cart, merging into an existing
// line. When inventory is tracked and the bump would exceed it the cart is
// left unchanged and Add reports false; repeated taps past the cap are
// silent no-ops by design.
func (s *CartStore) Add(product models.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return false, err
	}

	for i := range items {
		if items[i].ProductID != product.ID {
			continue
		}
		if product.TracksInventory() && items[i].Quantity+1 > product.Inventory {
			return false, nil
		}
		items[i].Quantity++
		s.persist(items)
		s.analytics.IncrCartAdds()
		return true, nil
	}

	if product.TracksInventory() && product.Inventory < 1 {
		return false, nil
	}
	line := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		ImageURL:  product.ImageURL,
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	}
	items = append([]models.CartItem{line}, items...)
	s.persist(items)
	s.analytics.IncrCartAdds()
	return true, nil
}

// UpdateQuantity sets a line's quantity, clamped to [1, current inventory]
// when stock is tracked. A requested quantity of zero or below removes the
// line. currentInventory comes from the live product, not the cart snapshot.
func (s *CartStore) UpdateQuantity(productID uuid.UUID, requested, currentInventory int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if requested <= 0 {
			items = append(items[:i], items[i+1:]...)
			s.persist(items)
			return nil
		}
		qty := requested
		if currentInventory > 0 && qty > currentInventory {
			qty = currentInventory
		}
		items[i].Quantity = qty
		s.persist(items)
		return nil
	}
	return nil
}

func (s *CartStore) Remove(productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ProductID == productID {
			items = append(items[:i], items[i+1:]...)
			s.persist(items)
			return nil
		}
	}
	return nil
}

func (s *CartStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist([]models.CartItem{})
	return nil
}

// Subtotal sums price × quantity over the cart lines.
func (s *CartStore) Subtotal() (float64, error) {
	items, err := s.Items()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum, nil
}

// Abandoned reports a non-empty cart whose last mutation is older than
// AbandonedAfter.
func (s *CartStore) Abandoned(now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return false, err
	}
	if len(items) == 0 {
		return false, nil
	}

	var meta models.CartMeta
	ok, err := s.backend.Load(KeyCartMeta, &meta)
	if err != nil || !ok {
		return false, err
	}
	return now.Sub(meta.UpdatedAt) > AbandonedAfter, nil
}
