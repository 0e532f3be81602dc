package checkout

import (
	"math"

	"grandstay/models"
)

const (
	taxRate           = 0.03
	serviceChargeRate = 0.01
)

// Subtotal sums the cart's line totals. Per-night items multiply by the stay
// length; every other kind contributes its flat resolved price.
func Subtotal(items []models.ServiceItem, nights int) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotal(nights)
	}
	return subtotal
}

// ComputePricing builds the full price breakdown for a cart. Tax and service
// charge are rounded independently before summing, not derived from a rounded
// grand total.
func ComputePricing(items []models.ServiceItem, nights int) models.PriceBreakdown {
	subtotal := Subtotal(items, nights)
	tax := int64(math.Round(float64(subtotal) * taxRate))
	serviceCharge := int64(math.Round(float64(subtotal) * serviceChargeRate))
	return models.PriceBreakdown{
		Subtotal:      subtotal,
		Tax:           tax,
		ServiceCharge: serviceCharge,
		Total:         subtotal + tax + serviceCharge,
	}
}
