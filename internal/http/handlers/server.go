package handlers

import (
	"github.com/techhardware/storefront/internal/checkout"
	"github.com/techhardware/storefront/internal/repo"
	"github.com/techhardware/storefront/internal/storage"
)

var (
	productRepo  repo.ProductRepository
	reviewRepo   repo.ReviewRepository
	stockLogRepo repo.StockLogRepository
	metricsRepo  repo.MetricsRepository

	cartStore     storage.KV
	wishlistStore storage.KV

	dispatcher checkout.Dispatcher

	adminUser         string
	adminPasswordHash string
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetReviewRepo(r repo.ReviewRepository) {
	reviewRepo = r
}

func SetStockLogRepo(r repo.StockLogRepository) {
	stockLogRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

// SetLedgerStores installs the durable stores backing the cart and
// wishlist ledgers. Each ledger key lives in its own namespace.
func SetLedgerStores(cart, wishlist storage.KV) {
	cartStore = cart
	wishlistStore = wishlist
}

func SetDispatcher(d checkout.Dispatcher) {
	dispatcher = d
}

// SetAdminCredentials installs the single admin credential. hash is a
// bcrypt hash of the admin password.
func SetAdminCredentials(user, hash string) {
	adminUser = user
	adminPasswordHash = hash
}
