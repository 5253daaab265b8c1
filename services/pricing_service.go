package services

import (
	"math"
	"strings"
	"time"

	"github.com/uthybuilds/Homespired-sub000/models"
)

// Zone auto-resolution from free-text city/state. The precedence below is
// load-bearing for shipping-cost parity with the storefront and must not be
// reordered:
//  1. a state that does not mention Lagos is outside Lagos, whatever the city
//  2. a city mentioning "island" is Lagos Island
//  3. a city mentioning "mainland" is Lagos Mainland
//  4. a Lagos state with an unrecognized city defaults to the mainland
//  5. otherwise unresolved; the caller falls back to manual zone selection
func ResolveZone(city, state string) string {
	city = strings.ToLower(strings.TrimSpace(city))
	state = strings.ToLower(strings.TrimSpace(state))

	if state != "" && !strings.Contains(state, "lagos") {
		return models.ZoneOutsideLagos
	}
	if strings.Contains(city, "island") {
		return models.ZoneLagosIsland
	}
	if strings.Contains(city, "mainland") {
		return models.ZoneLagosMainland
	}
	if strings.Contains(state, "lagos") {
		return models.ZoneLagosMainland
	}
	return ""
}

// ShippingCost is the resolved zone's price, zero when no zone matches.
func ShippingCost(zoneID string, zones []models.ShippingZone) float64 {
	for _, z := range zones {
		if z.ID == zoneID {
			return z.Price
		}
	}
	return 0
}

// DiscountStatus distinguishes the UI states around a discount code.
type DiscountStatus int

const (
	// DiscountNotFound means no code matched at all.
	DiscountNotFound DiscountStatus = iota
	// DiscountNotApplicable means the code exists but yields nothing:
	// toggled off, expired, or the subtotal is below its minimum.
	DiscountNotApplicable
	// DiscountApplied means Amount is in effect.
	DiscountApplied
)

type DiscountResult struct {
	Status   DiscountStatus
	Code     string
	Amount   float64
	Discount *models.Discount
}

// EvaluateDiscount checks a code against the discount list, case-insensitive.
// Percent amounts round to the nearest unit; fixed amounts round as given.
func EvaluateDiscount(code string, subtotal float64, discounts []models.Discount, now time.Time) DiscountResult {
	code = strings.TrimSpace(code)
	if code == "" {
		return DiscountResult{Status: DiscountNotFound}
	}

	for i := range discounts {
		d := discounts[i]
		if !strings.EqualFold(d.Code, code) {
			continue
		}

		result := DiscountResult{Status: DiscountNotApplicable, Code: d.Code, Discount: &d}
		if !d.Active {
			return result
		}
		if d.ExpiresAt != nil && now.After(*d.ExpiresAt) {
			return result
		}
		if d.MinSubtotal > 0 && subtotal < d.MinSubtotal {
			return result
		}

		result.Status = DiscountApplied
		switch d.Type {
		case models.DiscountPercent:
			result.Amount = math.Round(subtotal * d.Value / 100)
		case models.DiscountFixed:
			result.Amount = math.Round(d.Value)
		}
		return result
	}
	return DiscountResult{Status: DiscountNotFound, Code: code}
}

// GrandTotal never goes negative, however generous the discount.
func GrandTotal(subtotal, shipping, discount float64) float64 {
	return math.Max(0, subtotal+shipping-discount)
}
