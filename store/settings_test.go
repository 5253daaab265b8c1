package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/models"
)

func TestSettingsFallBackToDefaults(t *testing.T) {
	stores, _ := newTestStores(t)

	settings, err := stores.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	zone, ok := settings.Zone(models.ZoneLagosMainland)
	require.True(t, ok)
	assert.Equal(t, 3500.0, zone.Price)
}

func TestSettingsUpdatePersists(t *testing.T) {
	stores, _ := newTestStores(t)

	settings := models.DefaultSettings()
	settings.WhatsAppNumber = "2347011112222"
	settings.LowInventoryThreshold = 2
	require.NoError(t, Wait(stores.Settings.Update(settings)))

	got, err := stores.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "2347011112222", got.WhatsAppNumber)
	assert.Equal(t, 2, got.LowInventoryThreshold)
}

func TestSettingsUpdatePublishesChange(t *testing.T) {
	backend, err := NewLocalBackend(t.TempDir())
	require.NoError(t, err)
	bus := events.New(nil)
	stores := New(backend, bus)

	fired := 0
	bus.Subscribe(events.TopicSettingsChanged, func() { fired++ })

	require.NoError(t, Wait(stores.Settings.Update(models.DefaultSettings())))
	assert.Equal(t, 1, fired)
}
