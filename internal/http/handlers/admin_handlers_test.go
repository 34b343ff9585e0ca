package handlers_test

import (
	"net/http"
	"testing"

	"github.com/techhardware/storefront/internal/models"
)

func authHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAdminLogin(t *testing.T) {
	e := setup(t)

	w := e.do(t, http.MethodPost, "/admin/login",
		map[string]string{"username": "admin", "password": adminPassword}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	result := decode[map[string]string](t, w)
	if result["token"] == "" {
		t.Fatal("expected a session token")
	}

	// The issued token opens the admin surface.
	w = e.do(t, http.MethodGet, "/admin/metrics", nil, authHeaders(result["token"]))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with issued token, got %d", w.Code)
	}
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	e := setup(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "root", adminPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.do(t, http.MethodPost, "/admin/login",
				map[string]string{"username": tt.username, "password": tt.password}, nil)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	e := setup(t)

	w := e.do(t, http.MethodPost, "/admin/products", map[string]any{"name": "X", "price": 1}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	w = e.do(t, http.MethodPost, "/admin/products",
		map[string]any{"name": "X", "price": 1}, authHeaders("not-a-token"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with garbage token, got %d", w.Code)
	}
}

func TestCreateProduct(t *testing.T) {
	e := setup(t)
	token := adminToken(t)

	body := map[string]any{
		"name":           "Impresora laser",
		"description":    "Monocromo",
		"price":          150.0,
		"category":       "printers",
		"discount":       5.0,
		"stock":          10,
		"stock_minimum":  2,
		"specifications": map[string]string{"ppm": "22", "duplex": "si"},
	}
	w := e.do(t, http.MethodPost, "/admin/products", body, authHeaders(token))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decode[map[string]any](t, w)
	if created["effective_price"].(float64) != 142.5 {
		t.Errorf("expected effective price 142.5, got %v", created["effective_price"])
	}
	specs := created["specifications"].(map[string]any)
	if specs["ppm"] != "22" {
		t.Errorf("expected key-value specifications, got %v", created["specifications"])
	}
}

func TestCreateProductValidation(t *testing.T) {
	e := setup(t)
	token := adminToken(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"price": 10}},
		{"non-positive price", map[string]any{"name": "X", "price": 0}},
		{"discount above 100", map[string]any{"name": "X", "price": 10, "discount": 120}},
		{"negative stock", map[string]any{"name": "X", "price": 10, "stock": -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.do(t, http.MethodPost, "/admin/products", tt.body, authHeaders(token))
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	e := setup(t)
	token := adminToken(t)
	e.seedProduct(t, models.Product{Name: "Hub USB", Price: 20, Stock: 5})

	w := e.do(t, http.MethodPut, "/admin/products/1",
		map[string]any{"name": "Hub USB-C", "price": 25.0, "stock": 5}, authHeaders(token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := decode[map[string]any](t, w)
	if updated["name"] != "Hub USB-C" {
		t.Errorf("expected updated name, got %v", updated["name"])
	}

	w = e.do(t, http.MethodDelete, "/admin/products/1", nil, authHeaders(token))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = e.do(t, http.MethodGet, "/products/1", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}

	w = e.do(t, http.MethodPut, "/admin/products/9",
		map[string]any{"name": "Nada", "price": 1.0}, authHeaders(token))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 updating unknown product, got %d", w.Code)
	}
}

func TestAdjustStock(t *testing.T) {
	e := setup(t)
	token := adminToken(t)
	e.seedProduct(t, models.Product{Name: "Pendrive 64GB", Price: 12, Stock: 5, StockMinimum: 2})

	w := e.do(t, http.MethodPost, "/admin/products/1/stock",
		map[string]any{"delta": -3, "reason": "venta mostrador"}, authHeaders(token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	p := decode[map[string]any](t, w)
	if p["stock"].(float64) != 2 {
		t.Errorf("expected stock 2, got %v", p["stock"])
	}
	if p["low_stock"] != true {
		t.Errorf("expected low stock flag at minimum, got %v", p["low_stock"])
	}

	// Going below zero is rejected and leaves stock untouched.
	w = e.do(t, http.MethodPost, "/admin/products/1/stock",
		map[string]any{"delta": -5}, authHeaders(token))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	w = e.do(t, http.MethodGet, "/products/1", nil, nil)
	p = decode[map[string]any](t, w)
	if p["stock"].(float64) != 2 {
		t.Errorf("expected stock unchanged after rejected change, got %v", p["stock"])
	}
}

func TestGetStockMovements(t *testing.T) {
	e := setup(t)
	token := adminToken(t)
	e.seedProduct(t, models.Product{Name: "Disco externo", Price: 75, Stock: 10})

	e.do(t, http.MethodPost, "/admin/products/1/stock",
		map[string]any{"delta": -2, "reason": "venta"}, authHeaders(token))
	e.do(t, http.MethodPost, "/admin/products/1/stock",
		map[string]any{"delta": 5}, authHeaders(token))

	w := e.do(t, http.MethodGet, "/admin/products/1/movements", nil, authHeaders(token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode[map[string]any](t, w)
	data := resp["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(data))
	}
	first := data[0].(map[string]any)
	if first["delta"].(float64) != -2 || first["reason"] != "venta" {
		t.Errorf("unexpected first movement: %v", first)
	}
	// Unspecified reasons are recorded as manual adjustments.
	second := data[1].(map[string]any)
	if second["reason"] != "manual" {
		t.Errorf("expected default reason, got %v", second["reason"])
	}
	if resp["meta"].(map[string]any)["total_count"].(float64) != 2 {
		t.Errorf("unexpected meta: %v", resp["meta"])
	}

	w = e.do(t, http.MethodGet, "/admin/products/1/movements?limit=0", nil, authHeaders(token))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero limit, got %d", w.Code)
	}
	w = e.do(t, http.MethodGet, "/admin/products/1/movements?since=not-a-date", nil, authHeaders(token))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad since, got %d", w.Code)
	}
	w = e.do(t, http.MethodGet, "/admin/products/9/movements", nil, authHeaders(token))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown product, got %d", w.Code)
	}
}

func TestGetStockSummary(t *testing.T) {
	e := setup(t)
	token := adminToken(t)
	e.seedProduct(t, models.Product{Name: "A", Price: 10, Stock: 5, StockMinimum: 1})
	e.seedProduct(t, models.Product{Name: "B", Price: 10, Stock: 0})
	e.seedProduct(t, models.Product{Name: "C", Price: 10, Stock: 1, StockMinimum: 2, Discount: 15})

	w := e.do(t, http.MethodGet, "/admin/metrics", nil, authHeaders(token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	s := decode[map[string]float64](t, w)
	if s["total_products"] != 3 || s["in_stock"] != 1 || s["out_of_stock"] != 1 {
		t.Errorf("unexpected stock counts: %v", s)
	}
	if s["low_stock"] != 1 || s["discounted"] != 1 {
		t.Errorf("unexpected low stock or discount counts: %v", s)
	}
}
