package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthybuilds/Homespired-sub000/models"
)

func TestDiscountsCreateAndFind(t *testing.T) {
	stores, _ := newTestStores(t)

	created, done, err := stores.Discounts.Create(models.DiscountRequest{
		Code:  "VIP10",
		Type:  "percent",
		Value: 10,
	})
	require.NoError(t, err)
	require.NoError(t, Wait(done))
	assert.True(t, created.Active, "discounts default to active")

	got, found, err := stores.Discounts.FindByCode("vip10")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "VIP10", got.Code)

	_, found, err = stores.Discounts.FindByCode("NOPE")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDiscountsDuplicateCode(t *testing.T) {
	stores, _ := newTestStores(t)

	_, done, err := stores.Discounts.Create(models.DiscountRequest{Code: "VIP10", Type: "percent", Value: 10})
	require.NoError(t, err)
	require.NoError(t, Wait(done))

	// Uniqueness is case-insensitive.
	_, _, err = stores.Discounts.Create(models.DiscountRequest{Code: "vip10", Type: "fixed", Value: 500})
	assert.ErrorIs(t, err, ErrDiscountExists)
}

func TestDiscountsToggle(t *testing.T) {
	stores, _ := newTestStores(t)
	inactive := false
	_, done, err := stores.Discounts.Create(models.DiscountRequest{
		Code: "VIP10", Type: "percent", Value: 10, Active: &inactive,
	})
	require.NoError(t, err)
	require.NoError(t, Wait(done))

	toggled, done, err := stores.Discounts.Toggle("VIP10")
	require.NoError(t, err)
	require.NoError(t, Wait(done))
	assert.True(t, toggled.Active)

	toggled, done, err = stores.Discounts.Toggle("VIP10")
	require.NoError(t, err)
	require.NoError(t, Wait(done))
	assert.False(t, toggled.Active)

	_, _, err = stores.Discounts.Toggle("NOPE")
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestDiscountsDelete(t *testing.T) {
	stores, _ := newTestStores(t)
	_, done, err := stores.Discounts.Create(models.DiscountRequest{Code: "VIP10", Type: "percent", Value: 10})
	require.NoError(t, err)
	require.NoError(t, Wait(done))

	done, err = stores.Discounts.Delete("VIP10")
	require.NoError(t, err)
	require.NoError(t, Wait(done))

	_, found, err := stores.Discounts.FindByCode("VIP10")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = stores.Discounts.Delete("VIP10")
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}
