package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrdersStore holds placed orders. Orders are appended at checkout, mutated
// only through SetStatus and never deleted.
type OrdersStore struct {
	mu      sync.Mutex
	backend Backend
	bus     *events.Broadcaster
}

func (s *OrdersStore) load() ([]models.Order, error) {
	var orders []models.Order
	if _, err := s.backend.Load(KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrdersStore) Orders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *OrdersStore) Get(id uuid.UUID) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (s *OrdersStore) Create(order models.Order) (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	// Newest first, like the cart.
	orders = append([]models.Order{order}, orders...)

	done := s.backend.Save(KeyOrders, orders)
	s.bus.Publish(events.TopicStorageChanged)
	return done, nil
}

// SetStatus applies a status transition and stamps the matching timestamp.
// The previous status is returned so the caller can run the restock guard
// (restock only on a transition *into* cancelled).
func (s *OrdersStore) SetStatus(id uuid.UUID, status models.OrderStatus) (models.Order, models.OrderStatus, <-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return models.Order{}, "", nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		prev := orders[i].Status
		if prev == status {
			// No transition, no write, no restock.
			return orders[i], prev, resolved(nil), nil
		}

		now := time.Now().UTC()
		o := &orders[i]
		o.Status = status
		o.UpdatedAt = now
		switch status {
		case models.OrderConfirmed:
			if o.ConfirmedAt == nil {
				o.ConfirmedAt = &now
			}
		case models.OrderShipped:
			if o.ShippedAt == nil {
				o.ShippedAt = &now
			}
		case models.OrderDelivered:
			if o.DeliveredAt == nil {
				o.DeliveredAt = &now
			}
		case models.OrderCancelled:
			if o.CancelledAt == nil {
				o.CancelledAt = &now
			}
		}

		done := s.backend.Save(KeyOrders, orders)
		s.bus.Publish(events.TopicStorageChanged)
		return *o, prev, done, nil
	}
	return models.Order{}, "", nil, ErrOrderNotFound
}
