package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/techhardware/storefront/internal/checkout"
)

// CheckoutHandler godoc
// @Summary Reconcile the cart against remote stock and dispatch the order
// @Description Every line's stock is re-fetched before anything is
// @Description committed; any shortfall rejects the whole checkout with
// @Description the cart preserved. The cart is cleared only after the
// @Description order was dispatched.
// @Tags checkout
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Success 200 {object} CheckoutResponse
// @Failure 400 {string} string "Empty cart"
// @Failure 409 {object} InsufficientStockResponse
// @Failure 502 {string} string "Stock check or dispatch failed"
// @Router /checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	ledger, ok := loadCart(w, r)
	if !ok {
		return
	}

	reconciler := checkout.NewReconciler(productRepo, dispatcher)
	order, link, err := reconciler.Checkout(r.Context(), ledger)
	if err != nil {
		var insufficient *checkout.InsufficientStockError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusBadRequest)
		case errors.As(err, &insufficient):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(InsufficientStockResponse{
				Error:      insufficient.Error(),
				Shortfalls: insufficient.Shortfalls,
			})
		default:
			log.Printf("checkout: %v", err)
			http.Error(w, "checkout failed, cart preserved", http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CheckoutResponse{Order: order, Link: link})
}
