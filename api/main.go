package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/techhardware/storefront/internal/auth"
	"github.com/techhardware/storefront/internal/checkout"
	"github.com/techhardware/storefront/internal/config"
	"github.com/techhardware/storefront/internal/db"
	router "github.com/techhardware/storefront/internal/http"
	"github.com/techhardware/storefront/internal/http/handlers"
	rl "github.com/techhardware/storefront/internal/http/rate_limiter"
	"github.com/techhardware/storefront/internal/repo"
	"github.com/techhardware/storefront/internal/storage"
)

// @title TechHardware Storefront API
// @version 1.0
// @description Storefront backend: catalog, cart and wishlist ledgers, checkout, reviews and admin inventory panel.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load configuration: ", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	rl.Configure(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Could not connect to database: ", err)
	}
	defer database.Close()

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetReviewRepo(repo.NewPostgresReviewRepository(database))
	handlers.SetStockLogRepo(repo.NewPostgresStockLogRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))

	handlers.SetLedgerStores(
		storage.NewRedisKV(rdb, "techHardwareCart:", cfg.LedgerTTL),
		storage.NewRedisKV(rdb, "wishlist:", cfg.LedgerTTL),
	)
	handlers.SetDispatcher(checkout.NewWhatsAppDispatcher(cfg.WhatsAppPhone, cfg.OrderWebhookURL))
	handlers.SetAdminCredentials(cfg.AdminUser, cfg.AdminPasswordHash)

	r := router.NewRouter()
	log.Println("Storefront running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
