package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthybuilds/Homespired-sub000/models"
)

func createProduct(t *testing.T, stores *Stores, name string, price float64, inventory int) models.Product {
	t.Helper()
	p, done, err := stores.Catalog.Create(models.ProductRequest{
		Name:      name,
		Price:     price,
		Inventory: inventory,
	})
	require.NoError(t, err)
	require.NoError(t, Wait(done))
	return p
}

func TestCatalogCRUD(t *testing.T) {
	stores, _ := newTestStores(t)

	chair := createProduct(t, stores, "Velvet Accent Chair", 120000, 5)
	assert.NotEqual(t, uuid.Nil, chair.ID)
	assert.False(t, chair.CreatedAt.IsZero())

	got, err := stores.Catalog.Get(chair.ID)
	require.NoError(t, err)
	assert.Equal(t, chair.Name, got.Name)

	name := "Velvet Accent Chair II"
	price := 135000.0
	updated, done, err := stores.Catalog.Update(chair.ID, models.UpdateProductRequest{
		Name:  &name,
		Price: &price,
	})
	require.NoError(t, err)
	require.NoError(t, Wait(done))
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, price, updated.Price)
	// Untouched fields survive a partial update.
	assert.Equal(t, 5, updated.Inventory)

	done, err = stores.Catalog.Delete(chair.ID)
	require.NoError(t, err)
	require.NoError(t, Wait(done))
	_, err = stores.Catalog.Get(chair.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, _, err = stores.Catalog.Update(chair.ID, models.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = stores.Catalog.Delete(chair.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAdjustInventory(t *testing.T) {
	stores, _ := newTestStores(t)
	chair := createProduct(t, stores, "Chair", 1000, 5)
	rug := createProduct(t, stores, "Rug", 2000, 2)

	lines := []models.OrderLine{
		{ProductID: chair.ID, Quantity: 2},
		{ProductID: rug.ID, Quantity: 1},
	}

	done, err := stores.Catalog.AdjustInventory(lines, DecreaseStock)
	require.NoError(t, err)
	require.NoError(t, Wait(done))

	got, err := stores.Catalog.Get(chair.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Inventory)
	got, err = stores.Catalog.Get(rug.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Inventory)

	done, err = stores.Catalog.AdjustInventory(lines, IncreaseStock)
	require.NoError(t, err)
	require.NoError(t, Wait(done))
	got, err = stores.Catalog.Get(chair.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Inventory)
}

func TestAdjustInventoryFloorsAtZero(t *testing.T) {
	stores, _ := newTestStores(t)
	rug := createProduct(t, stores, "Rug", 2000, 1)

	done, err := stores.Catalog.AdjustInventory(
		[]models.OrderLine{{ProductID: rug.ID, Quantity: 4}}, DecreaseStock)
	require.NoError(t, err)
	require.NoError(t, Wait(done))

	got, err := stores.Catalog.Get(rug.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Inventory)
}

func TestAdjustInventorySkipsRemovedProducts(t *testing.T) {
	stores, _ := newTestStores(t)
	chair := createProduct(t, stores, "Chair", 1000, 5)

	// A cancelled order can reference a product deleted since; the line is
	// skipped rather than failing the whole restock.
	lines := []models.OrderLine{
		{ProductID: uuid.Must(uuid.NewV7()), Quantity: 3},
		{ProductID: chair.ID, Quantity: 1},
	}
	done, err := stores.Catalog.AdjustInventory(lines, IncreaseStock)
	require.NoError(t, err)
	require.NoError(t, Wait(done))

	got, err := stores.Catalog.Get(chair.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Inventory)
}

func TestLowStock(t *testing.T) {
	stores, _ := newTestStores(t)
	createProduct(t, stores, "Chair", 1000, 12)
	createProduct(t, stores, "Rug", 2000, 3)
	createProduct(t, stores, "Lamp", 500, 5)
	createProduct(t, stores, "Bespoke Shelf", 90000, 0) // untracked

	low, err := stores.Catalog.LowStock(5)
	require.NoError(t, err)
	require.Len(t, low, 2)
	names := []string{low[0].Name, low[1].Name}
	assert.Contains(t, names, "Rug")
	assert.Contains(t, names, "Lamp")
}
