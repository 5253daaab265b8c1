package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/models"
)

var (
	ErrDiscountNotFound = errors.New("discount not found")
	ErrDiscountExists   = errors.New("discount code already exists")
)

// DiscountsStore owns discount codes. Codes are unique case-insensitively.
type DiscountsStore struct {
	mu      sync.Mutex
	backend Backend
	bus     *events.Broadcaster
}

func (s *DiscountsStore) load() ([]models.Discount, error) {
	var discounts []models.Discount
	if _, err := s.backend.Load(KeyDiscounts, &discounts); err != nil {
		return nil, err
	}
	return discounts, nil
}

func (s *DiscountsStore) Discounts() ([]models.Discount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// FindByCode matches case-insensitively. Existence alone does not make a
// code applicable; the pricing service decides that.
func (s *DiscountsStore) FindByCode(code string) (models.Discount, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	discounts, err := s.load()
	if err != nil {
		return models.Discount{}, false, err
	}
	for _, d := range discounts {
		if strings.EqualFold(d.Code, code) {
			return d, true, nil
		}
	}
	return models.Discount{}, false, nil
}

func (s *DiscountsStore) Create(req models.DiscountRequest) (models.Discount, <-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	discounts, err := s.load()
	if err != nil {
		return models.Discount{}, nil, err
	}
	for _, d := range discounts {
		if strings.EqualFold(d.Code, req.Code) {
			return models.Discount{}, nil, ErrDiscountExists
		}
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	discount := models.Discount{
		Code:        strings.TrimSpace(req.Code),
		Type:        models.DiscountType(req.Type),
		Value:       req.Value,
		MinSubtotal: req.MinSubtotal,
		ExpiresAt:   req.ExpiresAt,
		Active:      active,
		CreatedAt:   time.Now().UTC(),
	}
	discounts = append(discounts, discount)

	done := s.backend.Save(KeyDiscounts, discounts)
	s.bus.Publish(events.TopicStorageChanged)
	return discount, done, nil
}

// Toggle flips a code's active flag.
func (s *DiscountsStore) Toggle(code string) (models.Discount, <-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	discounts, err := s.load()
	if err != nil {
		return models.Discount{}, nil, err
	}
	for i := range discounts {
		if strings.EqualFold(discounts[i].Code, code) {
			discounts[i].Active = !discounts[i].Active
			done := s.backend.Save(KeyDiscounts, discounts)
			s.bus.Publish(events.TopicStorageChanged)
			return discounts[i], done, nil
		}
	}
	return models.Discount{}, nil, ErrDiscountNotFound
}

func (s *DiscountsStore) Delete(code string) (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	discounts, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range discounts {
		if strings.EqualFold(discounts[i].Code, code) {
			discounts = append(discounts[:i], discounts[i+1:]...)
			done := s.backend.Save(KeyDiscounts, discounts)
			s.bus.Publish(events.TopicStorageChanged)
			return done, nil
		}
	}
	return nil, ErrDiscountNotFound
}
