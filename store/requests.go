package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/models"
)

var ErrRequestNotFound = errors.New("request not found")

// RequestsStore holds consultation/inspection/class requests.
type RequestsStore struct {
	mu      sync.Mutex
	backend Backend
	bus     *events.Broadcaster
}

func (s *RequestsStore) load() ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	if _, err := s.backend.Load(KeyRequests, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *RequestsStore) Requests() ([]models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *RequestsStore) Get(id uuid.UUID) (models.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests, err := s.load()
	if err != nil {
		return models.ServiceRequest{}, err
	}
	for _, r := range requests {
		if r.ID == id {
			return r, nil
		}
	}
	return models.ServiceRequest{}, ErrRequestNotFound
}

func (s *RequestsStore) Create(request models.ServiceRequest) (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests, err := s.load()
	if err != nil {
		return nil, err
	}
	requests = append([]models.ServiceRequest{request}, requests...)

	done := s.backend.Save(KeyRequests, requests)
	s.bus.Publish(events.TopicRequestsChanged)
	return done, nil
}

func (s *RequestsStore) SetStatus(id uuid.UUID, status models.RequestStatus) (models.ServiceRequest, <-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests, err := s.load()
	if err != nil {
		return models.ServiceRequest{}, nil, err
	}

	for i := range requests {
		if requests[i].ID != id {
			continue
		}
		r := &requests[i]
		if r.Status == status {
			return *r, resolved(nil), nil
		}

		now := time.Now().UTC()
		r.Status = status
		r.UpdatedAt = now
		switch status {
		case models.RequestConfirmed:
			if r.ConfirmedAt == nil {
				r.ConfirmedAt = &now
			}
		case models.RequestDeclined:
			if r.DeclinedAt == nil {
				r.DeclinedAt = &now
			}
		}

		done := s.backend.Save(KeyRequests, requests)
		s.bus.Publish(events.TopicRequestsChanged)
		return *r, done, nil
	}
	return models.ServiceRequest{}, nil, ErrRequestNotFound
}
