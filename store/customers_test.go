package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthybuilds/Homespired-sub000/models"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestCustomersUpsertInsertsAndMerges(t *testing.T) {
	stores, _ := newTestStores(t)

	created, err := stores.Customers.Upsert(models.Customer{
		Email: "Ada@Example.com",
		Name:  "Ada Obi",
		Phone: "+2348012345678",
		City:  "Yaba",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	// Merge: non-empty incoming fields win, empty ones preserve.
	lastOrder := time.Now().UTC()
	merged, err := stores.Customers.Upsert(models.Customer{
		Email:       "ada@example.com",
		Phone:       "+2348099999999",
		LastOrderAt: &lastOrder,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", merged.Name)
	assert.Equal(t, "+2348099999999", merged.Phone)
	assert.Equal(t, "Yaba", merged.City)
	require.NotNil(t, merged.LastOrderAt)
	assert.True(t, created.CreatedAt.Equal(merged.CreatedAt), "creation timestamp survives a merge")

	customers, err := stores.Customers.Customers()
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCustomersUpsertIsIdempotent(t *testing.T) {
	stores, _ := newTestStores(t)
	payload := models.Customer{
		Email: "ada@example.com",
		Name:  "Ada Obi",
		Phone: "+2348012345678",
	}

	first, err := stores.Customers.Upsert(payload)
	require.NoError(t, err)
	second, err := stores.Customers.Upsert(payload)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	customers, err := stores.Customers.Customers()
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCustomersUpsertIgnoresEmptyEmail(t *testing.T) {
	stores, _ := newTestStores(t)

	_, err := stores.Customers.Upsert(models.Customer{Name: "No Email"})
	require.NoError(t, err)
	customers, err := stores.Customers.Customers()
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCustomersGet(t *testing.T) {
	stores, _ := newTestStores(t)
	_, err := stores.Customers.Upsert(models.Customer{Email: "ada@example.com", Name: "Ada Obi"})
	require.NoError(t, err)

	got, ok, err := stores.Customers.Get("ADA@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ada Obi", got.Name)

	_, ok, err = stores.Customers.Get("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
