package catalog

import "github.com/techhardware/storefront/internal/models"

// EffectivePrice returns the unit price after the percentage discount is
// applied. Every place a price is shown or summed (catalog cards, cart
// lines, checkout totals) must go through this function so the numbers
// agree everywhere.
func EffectivePrice(unitPrice, discountPercent float64) float64 {
	return unitPrice * (1 - discountPercent/100)
}

// PriceBounds returns the lowest and highest effective price in the
// catalog. The storefront uses them to seed the price-range filter.
// An empty catalog yields (0, 0).
func PriceBounds(products []models.Product) (min, max float64) {
	if len(products) == 0 {
		return 0, 0
	}
	min = EffectivePrice(products[0].Price, products[0].Discount)
	max = min
	for _, p := range products[1:] {
		price := EffectivePrice(p.Price, p.Discount)
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max
}
