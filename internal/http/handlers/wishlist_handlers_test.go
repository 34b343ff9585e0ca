package handlers_test

import (
	"net/http"
	"testing"

	"github.com/techhardware/storefront/internal/models"
)

func TestToggleWishlist(t *testing.T) {
	e := setup(t)
	p := e.seedProduct(t, models.Product{Name: "Auriculares", Price: 45, Discount: 10, Stock: 7, Category: "audio"})

	headers := cartHeaders("wish-a")

	w := e.do(t, http.MethodPost, "/wishlist/toggle", map[string]int{"product_id": p.ID}, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[map[string]any](t, w)
	if resp["count"].(float64) != 1 {
		t.Fatalf("expected 1 entry after first toggle, got %v", resp["count"])
	}
	entry := resp["entries"].([]any)[0].(map[string]any)
	if entry["effective_price"].(float64) != 40.5 {
		t.Errorf("expected effective price 40.5, got %v", entry["effective_price"])
	}

	// Toggling again removes the entry.
	w = e.do(t, http.MethodPost, "/wishlist/toggle", map[string]int{"product_id": p.ID}, headers)
	resp = decode[map[string]any](t, w)
	if resp["count"].(float64) != 0 {
		t.Errorf("expected empty wishlist after second toggle, got %v", resp["count"])
	}
}

func TestToggleWishlistUnknownProduct(t *testing.T) {
	e := setup(t)

	w := e.do(t, http.MethodPost, "/wishlist/toggle", map[string]int{"product_id": 99}, cartHeaders("wish-a"))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestWishlistPersistsAcrossRequests(t *testing.T) {
	e := setup(t)
	p := e.seedProduct(t, models.Product{Name: "Microfono USB", Price: 85, Stock: 3})

	headers := cartHeaders("wish-persist")
	e.do(t, http.MethodPost, "/wishlist/toggle", map[string]int{"product_id": p.ID}, headers)

	w := e.do(t, http.MethodGet, "/wishlist", nil, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decode[map[string]any](t, w)
	if resp["count"].(float64) != 1 {
		t.Errorf("expected the entry to survive a fresh request, got %v", resp["count"])
	}
}
