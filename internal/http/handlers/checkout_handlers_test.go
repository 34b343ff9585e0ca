package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/techhardware/storefront/internal/models"
)

func TestCheckoutEmptyCart(t *testing.T) {
	e := setup(t)

	w := e.do(t, http.MethodPost, "/checkout", nil, cartHeaders("co-a"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	e := setup(t)
	p := e.seedProduct(t, models.Product{Name: "Placa de video", Price: 500, Discount: 10, Stock: 4})

	headers := cartHeaders("co-a")
	e.do(t, http.MethodPost, "/cart/items", map[string]int{"product_id": p.ID}, headers)
	e.do(t, http.MethodPatch, "/cart/items/1", map[string]int{"delta": 1}, headers)

	w := e.do(t, http.MethodPost, "/checkout", nil, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[map[string]any](t, w)
	if resp["link"] == "" {
		t.Error("expected a dispatch link")
	}
	order := resp["order"].(map[string]any)
	if order["total"].(float64) != 900 {
		t.Errorf("expected order total 900, got %v", order["total"])
	}
	if len(e.dispatcher.orders) != 1 {
		t.Fatalf("expected 1 dispatched order, got %d", len(e.dispatcher.orders))
	}

	w = e.do(t, http.MethodGet, "/cart", nil, headers)
	cart := decode[map[string]any](t, w)
	if cart["item_count"].(float64) != 0 {
		t.Errorf("expected cart cleared after checkout, got %v items", cart["item_count"])
	}
}

func TestCheckoutInsufficientStockPreservesCart(t *testing.T) {
	e := setup(t)
	p := e.seedProduct(t, models.Product{Name: "Gabinete ATX", Price: 120, Stock: 3})

	headers := cartHeaders("co-a")
	e.do(t, http.MethodPost, "/cart/items", map[string]int{"product_id": p.ID}, headers)
	// Local quantity changes are not stock-checked until checkout.
	e.do(t, http.MethodPatch, "/cart/items/1", map[string]int{"delta": 4}, headers)

	w := e.do(t, http.MethodPost, "/checkout", nil, headers)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[map[string]any](t, w)
	shortfalls := resp["shortfalls"].([]any)
	if len(shortfalls) != 1 {
		t.Fatalf("expected 1 shortfall, got %d", len(shortfalls))
	}
	s := shortfalls[0].(map[string]any)
	if s["name"] != "Gabinete ATX" || s["requested"].(float64) != 5 || s["available"].(float64) != 3 {
		t.Errorf("unexpected shortfall: %v", s)
	}
	if len(e.dispatcher.orders) != 0 {
		t.Error("expected no dispatch on shortfall")
	}

	w = e.do(t, http.MethodGet, "/cart", nil, headers)
	cart := decode[map[string]any](t, w)
	if cart["item_count"].(float64) != 5 {
		t.Errorf("expected cart untouched, got %v items", cart["item_count"])
	}
}

func TestCheckoutDispatchFailurePreservesCart(t *testing.T) {
	e := setup(t)
	p := e.seedProduct(t, models.Product{Name: "Parlantes 2.1", Price: 65, Stock: 10})

	headers := cartHeaders("co-a")
	e.do(t, http.MethodPost, "/cart/items", map[string]int{"product_id": p.ID}, headers)

	e.dispatcher.err = errors.New("gateway unreachable")
	w := e.do(t, http.MethodPost, "/checkout", nil, headers)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}

	w = e.do(t, http.MethodGet, "/cart", nil, headers)
	cart := decode[map[string]any](t, w)
	if cart["item_count"].(float64) != 1 {
		t.Errorf("expected cart preserved after dispatch failure, got %v items", cart["item_count"])
	}

	// Retrying once the gateway recovers succeeds.
	e.dispatcher.err = nil
	w = e.do(t, http.MethodPost, "/checkout", nil, headers)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 on retry, got %d", w.Code)
	}
}
