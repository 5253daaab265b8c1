package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/models"
)

func newTestStores(t *testing.T) (*Stores, Backend) {
	t.Helper()
	backend, err := NewLocalBackend(t.TempDir())
	require.NoError(t, err)
	return New(backend, events.New(nil)), backend
}

func product(name string, price float64, inventory int) models.Product {
	return models.Product{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Price:     price,
		Inventory: inventory,
	}
}

func TestCartAddMergesLines(t *testing.T) {
	stores, _ := newTestStores(t)
	chair := product("Chair", 1000, 5)

	for i := 0; i < 3; i++ {
		added, err := stores.Cart.Add(chair)
		require.NoError(t, err)
		assert.True(t, added)
	}

	items, err := stores.Cart.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartAddNewestFirst(t *testing.T) {
	stores, _ := newTestStores(t)

	_, err := stores.Cart.Add(product("Chair", 1000, 5))
	require.NoError(t, err)
	_, err = stores.Cart.Add(product("Rug", 2000, 5))
	require.NoError(t, err)
	_, err = stores.Cart.Add(product("Lamp", 500, 5))
	require.NoError(t, err)

	items, err := stores.Cart.Items()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Lamp", items[0].Name)
	assert.Equal(t, "Rug", items[1].Name)
	assert.Equal(t, "Chair", items[2].Name)
}

func TestCartAddRejectsPastInventory(t *testing.T) {
	stores, _ := newTestStores(t)
	chair := product("Chair", 1000, 2)

	for i := 0; i < 2; i++ {
		added, err := stores.Cart.Add(chair)
		require.NoError(t, err)
		require.True(t, added)
	}

	// Third tap exceeds stock: no error, no change, just a false.
	added, err := stores.Cart.Add(chair)
	require.NoError(t, err)
	assert.False(t, added)

	items, err := stores.Cart.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// And the rejection is not counted as a cart add.
	assert.Equal(t, int64(2), stores.Analytics.Snapshot().CartAdds)
}

func TestCartAddSoldOutProduct(t *testing.T) {
	stores, _ := newTestStores(t)

	// Inventory 0 means untracked, so the add goes through.
	added, err := stores.Cart.Add(product("Bespoke Shelf", 90000, 0))
	require.NoError(t, err)
	assert.True(t, added)
}

func TestCartUpdateQuantity(t *testing.T) {
	stores, _ := newTestStores(t)
	chair := product("Chair", 1000, 4)
	_, err := stores.Cart.Add(chair)
	require.NoError(t, err)

	t.Run("set within stock", func(t *testing.T) {
		require.NoError(t, stores.Cart.UpdateQuantity(chair.ID, 3, chair.Inventory))
		items, err := stores.Cart.Items()
		require.NoError(t, err)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("clamped to current inventory", func(t *testing.T) {
		require.NoError(t, stores.Cart.UpdateQuantity(chair.ID, 99, chair.Inventory))
		items, err := stores.Cart.Items()
		require.NoError(t, err)
		assert.Equal(t, 4, items[0].Quantity)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		require.NoError(t, stores.Cart.UpdateQuantity(uuid.Must(uuid.NewV7()), 2, 5))
		items, err := stores.Cart.Items()
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		require.NoError(t, stores.Cart.UpdateQuantity(chair.ID, 0, chair.Inventory))
		items, err := stores.Cart.Items()
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestCartRemoveAndClear(t *testing.T) {
	stores, _ := newTestStores(t)
	chair := product("Chair", 1000, 5)
	rug := product("Rug", 2000, 5)
	_, err := stores.Cart.Add(chair)
	require.NoError(t, err)
	_, err = stores.Cart.Add(rug)
	require.NoError(t, err)

	require.NoError(t, stores.Cart.Remove(chair.ID))
	items, err := stores.Cart.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, rug.ID, items[0].ProductID)

	require.NoError(t, stores.Cart.Clear())
	items, err = stores.Cart.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartSubtotal(t *testing.T) {
	stores, _ := newTestStores(t)
	chair := product("Chair", 1000, 5)
	_, err := stores.Cart.Add(chair)
	require.NoError(t, err)
	_, err = stores.Cart.Add(chair)
	require.NoError(t, err)
	_, err = stores.Cart.Add(product("Rug", 2500, 5))
	require.NoError(t, err)

	sum, err := stores.Cart.Subtotal()
	require.NoError(t, err)
	assert.Equal(t, 4500.0, sum)
}

func TestCartAbandoned(t *testing.T) {
	stores, backend := newTestStores(t)

	// Empty cart is never abandoned, whatever the meta says.
	abandoned, err := stores.Cart.Abandoned(time.Now().Add(48 * time.Hour))
	require.NoError(t, err)
	assert.False(t, abandoned)

	_, err = stores.Cart.Add(product("Chair", 1000, 5))
	require.NoError(t, err)

	abandoned, err = stores.Cart.Abandoned(time.Now())
	require.NoError(t, err)
	assert.False(t, abandoned)

	abandoned, err = stores.Cart.Abandoned(time.Now().Add(AbandonedAfter + time.Minute))
	require.NoError(t, err)
	assert.True(t, abandoned)

	// A later mutation resets the clock.
	require.NoError(t, Wait(backend.Save(KeyCartMeta, models.CartMeta{UpdatedAt: time.Now().UTC()})))
	abandoned, err = stores.Cart.Abandoned(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, abandoned)
}
