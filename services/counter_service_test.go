package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthybuilds/Homespired-sub000/store"
)

func TestCounterLocalSequence(t *testing.T) {
	backend, err := store.NewLocalBackend(t.TempDir())
	require.NoError(t, err)

	svc := NewCounterService(nil, backend)
	ctx := context.Background()

	assert.Equal(t, int64(1), svc.Next(ctx, SeqOrders, false))
	assert.Equal(t, int64(2), svc.Next(ctx, SeqOrders, false))
	assert.Equal(t, int64(3), svc.Next(ctx, SeqOrders, false))

	// Requests count in their own space.
	assert.Equal(t, int64(1), svc.Next(ctx, SeqRequests, false))

	// Admin without a sync database still uses the local sequence.
	assert.Equal(t, int64(4), svc.Next(ctx, SeqOrders, true))
}

func TestCounterResumesFromPersistedValue(t *testing.T) {
	dir := t.TempDir()

	backend, err := store.NewLocalBackend(dir)
	require.NoError(t, err)
	require.NoError(t, store.Wait(backend.Save(store.KeyCounters, map[string]int64{SeqOrders: 41})))

	svc := NewCounterService(nil, backend)
	assert.Equal(t, int64(42), svc.Next(context.Background(), SeqOrders, false))
	assert.Equal(t, int64(43), svc.Next(context.Background(), SeqOrders, false))
}

// flakyBackend fails reads on demand while passing everything else through.
type flakyBackend struct {
	store.Backend
	failLoad bool
}

func (b *flakyBackend) Load(key store.EntityKey, out any) (bool, error) {
	if b.failLoad {
		return false, errors.New("disk read failed")
	}
	return b.Backend.Load(key, out)
}

func TestCounterNeverRestartsOnReadFailure(t *testing.T) {
	local, err := store.NewLocalBackend(t.TempDir())
	require.NoError(t, err)
	backend := &flakyBackend{Backend: local}

	svc := NewCounterService(nil, backend)
	ctx := context.Background()

	assert.Equal(t, int64(1), svc.Next(ctx, SeqOrders, false))
	assert.Equal(t, int64(2), svc.Next(ctx, SeqOrders, false))

	backend.failLoad = true
	assert.Equal(t, int64(3), svc.Next(ctx, SeqOrders, false),
		"a transient read failure continues the sequence instead of restarting it")

	backend.failLoad = false
	assert.Equal(t, int64(4), svc.Next(ctx, SeqOrders, false))
}

func TestCounterSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	backend, err := store.NewLocalBackend(dir)
	require.NoError(t, err)
	first := NewCounterService(nil, backend)
	first.Next(ctx, SeqOrders, false)
	first.Next(ctx, SeqOrders, false)

	reopened, err := store.NewLocalBackend(dir)
	require.NoError(t, err)
	second := NewCounterService(nil, reopened)
	assert.Equal(t, int64(3), second.Next(ctx, SeqOrders, false))
}
