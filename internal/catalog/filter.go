package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/techhardware/storefront/internal/models"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

type SortKey string

const (
	SortNameAsc      SortKey = "name"
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortDiscountDesc SortKey = "discount"
)

// Criteria selects and orders the visible subset of the catalog.
// Price bounds are inclusive and compared against effective price.
type Criteria struct {
	Category       string
	PriceMin       float64
	PriceMax       float64
	InStockOnly    bool
	DiscountedOnly bool
	Sort           SortKey
}

// minSearchLen: search terms shorter than this are treated as no search.
const minSearchLen = 2

// Visible applies the filter stages in fixed order (category, text
// search, price range, stock, discount) and sorts last. The input slice
// is never mutated; the sort is stable so products with equal keys keep
// their catalog order. Pure function, safe to call on every request.
func Visible(products []models.Product, c Criteria, search string) []models.Product {
	out := make([]models.Product, 0, len(products))

	search = strings.TrimSpace(search)
	searching := len([]rune(search)) >= minSearchLen
	needle := strings.ToLower(search)

	for _, p := range products {
		if c.Category != CategoryAll && c.Category != "" && p.Category != c.Category {
			continue
		}
		if searching && !matchesSearch(p, needle) {
			continue
		}
		price := EffectivePrice(p.Price, p.Discount)
		if price < c.PriceMin || price > c.PriceMax {
			continue
		}
		if c.InStockOnly && p.Stock <= 0 {
			continue
		}
		if c.DiscountedOnly && p.Discount <= 0 {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, c.Sort)
	return out
}

// matchesSearch reports whether any of name, description or category
// contains the lowercased needle.
func matchesSearch(p models.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return EffectivePrice(products[i].Price, products[i].Discount) <
				EffectivePrice(products[j].Price, products[j].Discount)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return EffectivePrice(products[i].Price, products[i].Discount) >
				EffectivePrice(products[j].Price, products[j].Discount)
		})
	case SortDiscountDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Discount > products[j].Discount
		})
	default:
		// Collators are not safe for concurrent use, so build one per call.
		col := collate.New(language.Spanish, collate.Loose)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
