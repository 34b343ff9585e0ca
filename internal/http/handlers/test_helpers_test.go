package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/techhardware/storefront/internal/auth"
	"github.com/techhardware/storefront/internal/checkout"
	api "github.com/techhardware/storefront/internal/http"
	"github.com/techhardware/storefront/internal/http/handlers"
	rl "github.com/techhardware/storefront/internal/http/rate_limiter"
	"github.com/techhardware/storefront/internal/models"
	"github.com/techhardware/storefront/internal/repo"
	"github.com/techhardware/storefront/internal/storage"
)

const adminPassword = "hunter2-admin"

type fakeDispatcher struct {
	err    error
	orders []checkout.Order
}

func (d *fakeDispatcher) Dispatch(_ context.Context, order checkout.Order) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.orders = append(d.orders, order)
	return "https://wa.me/123?text=order", nil
}

type env struct {
	router     http.Handler
	products   *repo.InMemoryProductRepository
	dispatcher *fakeDispatcher
}

func setup(t *testing.T) *env {
	t.Helper()

	auth.SetSecret("test-secret")
	rl.Configure(1000, 1000)
	rl.CleanupAllVisitors()

	products := repo.NewInMemoryProductRepository()
	reviews := repo.NewInMemoryReviewRepository()
	stockLog := repo.NewInMemoryStockLogRepository()
	metrics := repo.NewInMemoryMetricsRepository()
	metrics.SetRepositories(products, stockLog)

	handlers.SetProductRepo(products)
	handlers.SetReviewRepo(reviews)
	handlers.SetStockLogRepo(stockLog)
	handlers.SetMetricsRepo(metrics)
	handlers.SetLedgerStores(storage.NewMemoryKV(), storage.NewMemoryKV())

	dispatcher := &fakeDispatcher{}
	handlers.SetDispatcher(dispatcher)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing admin password: %v", err)
	}
	handlers.SetAdminCredentials("admin", string(hash))

	return &env{router: api.NewRouter(), products: products, dispatcher: dispatcher}
}

func (e *env) seedProduct(t *testing.T, p models.Product) models.Product {
	t.Helper()
	created, err := e.products.Create(p)
	if err != nil {
		t.Fatalf("seeding product: %v", err)
	}
	return created
}

func (e *env) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateAdminToken("admin")
	if err != nil {
		t.Fatalf("generating admin token: %v", err)
	}
	return token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v (body: %s)", err, w.Body.String())
	}
	return v
}
