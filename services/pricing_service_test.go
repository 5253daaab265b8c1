package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthybuilds/Homespired-sub000/models"
)

func TestResolveZone(t *testing.T) {
	tests := []struct {
		name  string
		city  string
		state string
		want  string
	}{
		{"mainland city in lagos", "Lekki", "Lagos", models.ZoneLagosMainland},
		{"island keyword wins", "Victoria Island", "Lagos", models.ZoneLagosIsland},
		{"non-lagos state", "Abuja", "FCT", models.ZoneOutsideLagos},
		{"nothing to go on", "", "", ""},
		{"mainland keyword", "Mainland Yaba", "", models.ZoneLagosMainland},
		{"island keyword without state", "ikoyi island", "", models.ZoneLagosIsland},
		{"state mentions lagos, unknown city", "Ikeja", "Lagos State", models.ZoneLagosMainland},
		{"non-lagos state beats island city", "Bonny Island", "Rivers", models.ZoneOutsideLagos},
		{"case insensitive", "LEKKI", "LAGOS", models.ZoneLagosMainland},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveZone(tt.city, tt.state))
		})
	}
}

func TestResolveZoneIsPure(t *testing.T) {
	first := ResolveZone("Lekki", "Lagos")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolveZone("Lekki", "Lagos"))
	}
}

func TestShippingCost(t *testing.T) {
	zones := models.DefaultSettings().ShippingZones

	assert.Equal(t, 3500.0, ShippingCost(models.ZoneLagosMainland, zones))
	assert.Equal(t, 0.0, ShippingCost("moon-base", zones))
	assert.Equal(t, 0.0, ShippingCost("", zones))
}

func TestEvaluateDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	discounts := []models.Discount{
		{Code: "VIP10", Type: models.DiscountPercent, Value: 10, Active: true},
		{Code: "FLAT5K", Type: models.DiscountFixed, Value: 5000, Active: true},
		{Code: "BIGSPEND", Type: models.DiscountPercent, Value: 15, MinSubtotal: 200000, Active: true},
		{Code: "RETIRED", Type: models.DiscountPercent, Value: 20, Active: false},
		{Code: "EXPIRED", Type: models.DiscountPercent, Value: 20, Active: true, ExpiresAt: &past},
		{Code: "FRESH", Type: models.DiscountPercent, Value: 20, Active: true, ExpiresAt: &future},
	}

	t.Run("percent rounds", func(t *testing.T) {
		res := EvaluateDiscount("VIP10", 120000, discounts, now)
		require.Equal(t, DiscountApplied, res.Status)
		assert.Equal(t, 12000.0, res.Amount)
	})

	t.Run("case insensitive match", func(t *testing.T) {
		res := EvaluateDiscount("vip10", 1000, discounts, now)
		assert.Equal(t, DiscountApplied, res.Status)
		assert.Equal(t, 100.0, res.Amount)
	})

	t.Run("fixed amount", func(t *testing.T) {
		res := EvaluateDiscount("FLAT5K", 50000, discounts, now)
		require.Equal(t, DiscountApplied, res.Status)
		assert.Equal(t, 5000.0, res.Amount)
	})

	t.Run("below minimum subtotal", func(t *testing.T) {
		res := EvaluateDiscount("BIGSPEND", 100000, discounts, now)
		assert.Equal(t, DiscountNotApplicable, res.Status)
		assert.Zero(t, res.Amount)
	})

	t.Run("minimum subtotal met exactly", func(t *testing.T) {
		res := EvaluateDiscount("BIGSPEND", 200000, discounts, now)
		assert.Equal(t, DiscountApplied, res.Status)
		assert.Equal(t, 30000.0, res.Amount)
	})

	t.Run("inactive code is found but not applicable", func(t *testing.T) {
		res := EvaluateDiscount("RETIRED", 100000, discounts, now)
		assert.Equal(t, DiscountNotApplicable, res.Status)
		assert.Zero(t, res.Amount)
	})

	t.Run("expired code", func(t *testing.T) {
		res := EvaluateDiscount("EXPIRED", 100000, discounts, now)
		assert.Equal(t, DiscountNotApplicable, res.Status)
	})

	t.Run("unexpired code applies", func(t *testing.T) {
		res := EvaluateDiscount("FRESH", 100000, discounts, now)
		assert.Equal(t, DiscountApplied, res.Status)
		assert.Equal(t, 20000.0, res.Amount)
	})

	t.Run("unknown code", func(t *testing.T) {
		res := EvaluateDiscount("NOPE", 100000, discounts, now)
		assert.Equal(t, DiscountNotFound, res.Status)
	})

	t.Run("empty code", func(t *testing.T) {
		res := EvaluateDiscount("", 100000, discounts, now)
		assert.Equal(t, DiscountNotFound, res.Status)
	})
}

func TestGrandTotal(t *testing.T) {
	assert.Equal(t, 111500.0, GrandTotal(120000, 3500, 12000))
	assert.Equal(t, 0.0, GrandTotal(1000, 0, 5000), "total never goes negative")
	assert.Equal(t, 3500.0, GrandTotal(0, 3500, 0))
}
