package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/techhardware/storefront/internal/catalog"
	"github.com/techhardware/storefront/internal/repo"
)

// GetProductsHandler godoc
// @Summary List the full catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = productResponse(p)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(productResponse(product))
}

// SearchProductsHandler godoc
// @Summary Filter, search and sort the catalog
// @Description Applies category, text search, effective-price range,
// @Description stock and discount filters in fixed order, sorting last.
// @Tags catalog
// @Produce json
// @Param category query string false "Category, or 'all'"
// @Param q query string false "Search text (2+ characters)"
// @Param priceMin query number false "Minimum effective price"
// @Param priceMax query number false "Maximum effective price"
// @Param inStockOnly query bool false "Only products with stock"
// @Param discountedOnly query bool false "Only discounted products"
// @Param sort query string false "name | price-asc | price-desc | discount"
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products/search [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	criteria := catalog.Criteria{
		Category:       q.Get("category"),
		PriceMin:       0,
		PriceMax:       math.MaxFloat64,
		InStockOnly:    q.Get("inStockOnly") == "true",
		DiscountedOnly: q.Get("discountedOnly") == "true",
		Sort:           catalog.SortKey(q.Get("sort")),
	}
	if v := parseFloatPtr(q.Get("priceMin")); v != nil {
		criteria.PriceMin = *v
	}
	if v := parseFloatPtr(q.Get("priceMax")); v != nil {
		criteria.PriceMax = *v
	}

	visible := catalog.Visible(products, criteria, q.Get("q"))

	response := make([]ProductResponse, len(visible))
	for i, p := range visible {
		response[i] = productResponse(p)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetPriceRangeHandler godoc
// @Summary Effective price bounds of the catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} PriceRangeResponse
// @Failure 500 {string} string "Internal error"
// @Router /products/price-range [get]
func GetPriceRangeHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	min, max := catalog.PriceBounds(products)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PriceRangeResponse{Min: min, Max: max})
}
