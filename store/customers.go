package store

import (
	"strings"
	"sync"
	"time"

	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/models"
)

// NormalizeEmail is the customer key function: trimmed, lower-cased email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CustomersStore keys customers by normalized email and merges repeated
// submissions.
type CustomersStore struct {
	mu      sync.Mutex
	backend Backend
	bus     *events.Broadcaster
}

func (s *CustomersStore) load() ([]models.Customer, error) {
	var customers []models.Customer
	if _, err := s.backend.Load(KeyCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomersStore) Customers() ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *CustomersStore) Get(email string) (models.Customer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.load()
	if err != nil {
		return models.Customer{}, false, err
	}
	key := NormalizeEmail(email)
	for _, c := range customers {
		if c.Email == key {
			return c, true, nil
		}
	}
	return models.Customer{}, false, nil
}

// Upsert inserts or merges by normalized email. Merge rule: a non-empty
// incoming field overwrites, an empty one preserves what is stored. The
// original creation timestamp always survives a merge, so repeating the same
// payload is idempotent.
func (s *CustomersStore) Upsert(incoming models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.load()
	if err != nil {
		return models.Customer{}, err
	}

	key := NormalizeEmail(incoming.Email)
	if key == "" {
		return models.Customer{}, nil
	}
	now := time.Now().UTC()

	for i := range customers {
		if customers[i].Email != key {
			continue
		}
		c := &customers[i]
		if incoming.Name != "" {
			c.Name = incoming.Name
		}
		if incoming.Phone != "" {
			c.Phone = incoming.Phone
		}
		if incoming.Address != "" {
			c.Address = incoming.Address
		}
		if incoming.City != "" {
			c.City = incoming.City
		}
		if incoming.State != "" {
			c.State = incoming.State
		}
		if incoming.LastOrderAt != nil {
			c.LastOrderAt = incoming.LastOrderAt
		}
		c.UpdatedAt = now

		s.backend.Save(KeyCustomers, customers)
		s.bus.Publish(events.TopicStorageChanged)
		return *c, nil
	}

	created := incoming
	created.Email = key
	created.CreatedAt = now
	created.UpdatedAt = now
	customers = append(customers, created)

	s.backend.Save(KeyCustomers, customers)
	s.bus.Publish(events.TopicStorageChanged)
	return created, nil
}
