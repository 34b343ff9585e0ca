package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/techhardware/storefront/internal/catalog"
	"github.com/techhardware/storefront/internal/repo"
	"github.com/techhardware/storefront/internal/wishlist"
)

func loadWishlist(w http.ResponseWriter, r *http.Request) (*wishlist.Ledger, bool) {
	token := clientToken(w, r)
	ledger, err := wishlist.Load(r.Context(), wishlistStore, token)
	if err != nil {
		log.Printf("loading wishlist: %v", err)
		http.Error(w, "could not load wishlist", http.StatusInternalServerError)
		return nil, false
	}
	return ledger, true
}

func wishlistResponse(token string, ledger *wishlist.Ledger) WishlistResponse {
	entries := ledger.Entries()
	resp := WishlistResponse{
		Token:   token,
		Entries: make([]WishlistEntryResponse, len(entries)),
		Count:   ledger.Count(),
	}
	for i, e := range entries {
		resp.Entries[i] = WishlistEntryResponse{
			ProductID:      e.ProductID,
			Name:           e.Name,
			UnitPrice:      e.UnitPrice,
			Discount:       e.Discount,
			EffectivePrice: catalog.EffectivePrice(e.UnitPrice, e.Discount),
			Image:          e.Image,
			Category:       e.Category,
		}
	}
	return resp
}

// GetWishlistHandler godoc
// @Summary Current wishlist
// @Tags wishlist
// @Produce json
// @Param X-Cart-Token header string false "Client token"
// @Success 200 {object} WishlistResponse
// @Failure 500 {string} string "Internal error"
// @Router /wishlist [get]
func GetWishlistHandler(w http.ResponseWriter, r *http.Request) {
	ledger, ok := loadWishlist(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wishlistResponse(w.Header().Get(cartTokenHeader), ledger))
}

// ToggleWishlistHandler godoc
// @Summary Favorite or unfavorite a product
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Client token"
// @Param item body ToggleWishlistRequest true "Product to toggle"
// @Success 200 {object} WishlistResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /wishlist/toggle [post]
func ToggleWishlistHandler(w http.ResponseWriter, r *http.Request) {
	var req ToggleWishlistRequest
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

	ledger, ok := loadWishlist(w, r)
	if !ok {
		return
	}
	if _, err := ledger.Toggle(r.Context(), product); err != nil {
		log.Printf("wishlist toggle: %v", err)
		http.Error(w, "could not update wishlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wishlistResponse(w.Header().Get(cartTokenHeader), ledger))
}
