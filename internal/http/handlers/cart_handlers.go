package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/techhardware/storefront/internal/cart"
	"github.com/techhardware/storefront/internal/catalog"
	"github.com/techhardware/storefront/internal/repo"
)

func loadCart(w http.ResponseWriter, r *http.Request) (*cart.Ledger, bool) {
	token := clientToken(w, r)
	ledger, err := cart.Load(r.Context(), cartStore, productRepo, token)
	if err != nil {
		log.Printf("loading cart: %v", err)
		http.Error(w, "could not load cart", http.StatusInternalServerError)
		return nil, false
	}
	return ledger, true
}

func cartResponse(ledger *cart.Ledger) CartResponse {
	lines := ledger.Lines()
	resp := CartResponse{
		Token:     ledger.Key(),
		Lines:     make([]CartLineResponse, len(lines)),
		Total:     ledger.Total(),
		ItemCount: ledger.ItemCount(),
	}
	for i, line := range lines {
		resp.Lines[i] = CartLineResponse{
			ProductID:      line.ProductID,
			Name:           line.Name,
			UnitPrice:      line.UnitPrice,
			Discount:       line.Discount,
			EffectivePrice: catalog.EffectivePrice(line.UnitPrice, line.Discount),
			Quantity:       line.Quantity,
			Subtotal:       line.Subtotal(),
		}
	}
	return resp
}

// GetCartHandler godoc
// @Summary Current cart ledger
// @Tags cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Success 200 {object} CartResponse
// @Failure 500 {string} string "Internal error"
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	ledger, ok := loadCart(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse(ledger))
}

// AddCartItemHandler godoc
// @Summary Add one unit of a product to the cart
// @Description Re-checks remote stock before granting the add.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Param item body AddCartItemRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 409 {string} string "Out of stock or stock exceeded"
// @Failure 502 {string} string "Stock check failed"
// @Router /cart/items [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	ledger, ok := loadCart(w, r)
	if !ok {
		return
	}

	if err := ledger.AddItem(r.Context(), product); err != nil {
		var exceeded *cart.StockExceededError
		switch {
		case errors.Is(err, cart.ErrOutOfStock):
			http.Error(w, "product out of stock", http.StatusConflict)
		case errors.As(err, &exceeded):
			http.Error(w, exceeded.Error(), http.StatusConflict)
		default:
			log.Printf("cart add: %v", err)
			http.Error(w, "could not verify stock", http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse(ledger))
}

// ChangeCartQuantityHandler godoc
// @Summary Adjust the quantity of a cart line
// @Description Local adjustment only; remote stock is re-validated at checkout.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Param id path int true "Product ID"
// @Param change body QuantityChangeRequest true "Quantity delta"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /cart/items/{id} [patch]
func ChangeCartQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req QuantityChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	ledger, ok := loadCart(w, r)
	if !ok {
		return
	}
	if err := ledger.ChangeQuantity(r.Context(), id, req.Delta); err != nil {
		log.Printf("cart quantity change: %v", err)
		http.Error(w, "could not update cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse(ledger))
}

// RemoveCartItemHandler godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 500 {string} string "Internal error"
// @Router /cart/items/{id} [delete]
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	ledger, ok := loadCart(w, r)
	if !ok {
		return
	}
	if err := ledger.RemoveItem(r.Context(), id); err != nil {
		log.Printf("cart remove: %v", err)
		http.Error(w, "could not update cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse(ledger))
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Success 200 {object} CartResponse
// @Failure 500 {string} string "Internal error"
// @Router /cart [delete]
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	ledger, ok := loadCart(w, r)
	if !ok {
		return
	}
	if err := ledger.Clear(r.Context()); err != nil {
		log.Printf("cart clear: %v", err)
		http.Error(w, "could not update cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse(ledger))
}
