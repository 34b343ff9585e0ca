package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techhardware/storefront/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// Public catalog
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/search", handlers.SearchProductsHandler)
	r.Get("/products/price-range", handlers.GetPriceRangeHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)

	// Reviews
	r.Get("/products/{id}/reviews", handlers.GetReviewsHandler)
	r.With(RateLimited).Post("/products/{id}/reviews", handlers.CreateReviewHandler)
	r.With(RateLimited).Post("/reviews/{id}/helpful", handlers.MarkReviewHelpfulHandler)

	// Cart and wishlist ledgers
	r.Get("/cart", handlers.GetCartHandler)
	r.With(RateLimited).Post("/cart/items", handlers.AddCartItemHandler)
	r.With(RateLimited).Patch("/cart/items/{id}", handlers.ChangeCartQuantityHandler)
	r.With(RateLimited).Delete("/cart/items/{id}", handlers.RemoveCartItemHandler)
	r.With(RateLimited).Delete("/cart", handlers.ClearCartHandler)
	r.Get("/wishlist", handlers.GetWishlistHandler)
	r.With(RateLimited).Post("/wishlist/toggle", handlers.ToggleWishlistHandler)

	// Checkout
	r.With(RateLimited).Post("/checkout", handlers.CheckoutHandler)

	// Admin panel
	r.Post("/admin/login", handlers.AdminLoginHandler)
	r.Group(func(r chi.Router) {
		r.Use(AdminOnly)
		r.Post("/admin/products", handlers.CreateProductHandler)
		r.Put("/admin/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/admin/products/{id}", handlers.DeleteProductHandler)
		r.Post("/admin/products/{id}/stock", handlers.AdjustStockHandler)
		r.Get("/admin/products/{id}/movements", handlers.GetStockMovementsHandler)
		r.Get("/admin/metrics", handlers.GetStockSummaryHandler)
	})

	return r
}
