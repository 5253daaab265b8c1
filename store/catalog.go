package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/models"
)

// AdjustDirection says which way an order movement shifts stock.
type AdjustDirection int

const (
	// DecreaseStock is applied when an order is placed.
	DecreaseStock AdjustDirection = iota
	// IncreaseStock restocks on cancellation.
	IncreaseStock
)

var ErrProductNotFound = errors.New("product not found")

// CatalogStore owns the product collection. Admin CRUD plus the inventory
// reconciler, which is the only path that mutates stock after creation.
type CatalogStore struct {
	mu      sync.Mutex
	backend Backend
	bus     *events.Broadcaster
}

func (s *CatalogStore) load() ([]models.Product, error) {
	var products []models.Product
	if _, err := s.backend.Load(KeyCatalog, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogStore) Products() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *CatalogStore) Get(id uuid.UUID) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (s *CatalogStore) Create(req models.ProductRequest) (models.Product, <-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return models.Product{}, nil, err
	}

	now := time.Now().UTC()
	product := models.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Inventory:   req.Inventory,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	products = append(products, product)

	done := s.backend.Save(KeyCatalog, products)
	s.bus.Publish(events.TopicStorageChanged)
	return product, done, nil
}

func (s *CatalogStore) Update(id uuid.UUID, req models.UpdateProductRequest) (models.Product, <-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return models.Product{}, nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		p := &products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.ImageURL != nil {
			p.ImageURL = *req.ImageURL
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Inventory != nil {
			p.Inventory = *req.Inventory
		}
		p.UpdatedAt = time.Now().UTC()

		done := s.backend.Save(KeyCatalog, products)
		s.bus.Publish(events.TopicStorageChanged)
		return *p, done, nil
	}
	return models.Product{}, nil, ErrProductNotFound
}

func (s *CatalogStore) Delete(id uuid.UUID) (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			done := s.backend.Save(KeyCatalog, products)
			s.bus.Publish(events.TopicStorageChanged)
			return done, nil
		}
	}
	return nil, ErrProductNotFound
}

// AdjustInventory shifts stock by the quantities in an order's line snapshot,
// floored at zero. Lines whose product has been removed from the catalog are
// skipped. The caller is responsible for the status-transition guard that
// prevents double-restocking an already-cancelled order.
func (s *CatalogStore) AdjustInventory(lines []models.OrderLine, direction AdjustDirection) (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}

	changed := false
	for _, line := range lines {
		for i := range products {
			if products[i].ID != line.ProductID {
				continue
			}
			delta := line.Quantity
			if direction == DecreaseStock {
				delta = -delta
			}
			next := products[i].Inventory + delta
			if next < 0 {
				next = 0
			}
			products[i].Inventory = next
			products[i].UpdatedAt = time.Now().UTC()
			changed = true
			break
		}
	}
	if !changed {
		return resolved(nil), nil
	}

	done := s.backend.Save(KeyCatalog, products)
	s.bus.Publish(events.TopicStorageChanged)
	return done, nil
}

// LowStock lists tracked products at or below the alert threshold.
func (s *CatalogStore) LowStock(threshold int) ([]models.Product, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}
	var low []models.Product
	for _, p := range products {
		if p.TracksInventory() && p.Inventory <= threshold {
			low = append(low, p)
		}
	}
	return low, nil
}
