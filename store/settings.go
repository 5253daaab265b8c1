package store

import (
	"sync"

	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/models"
)

// SettingsStore owns the business-settings singleton. The record always
// exists: an unsaved store reads as DefaultSettings.
type SettingsStore struct {
	mu      sync.Mutex
	backend Backend
	bus     *events.Broadcaster
}

func (s *SettingsStore) Get() (models.StoreSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := models.DefaultSettings()
	if _, err := s.backend.Load(KeySettings, &settings); err != nil {
		return models.DefaultSettings(), err
	}
	return settings, nil
}

func (s *SettingsStore) Update(settings models.StoreSettings) <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()

	done := s.backend.Save(KeySettings, settings)
	s.bus.Publish(events.TopicSettingsChanged)
	return done
}
