package handlers

import (
	"encoding/json"

	"github.com/techhardware/storefront/internal/checkout"
)

type ProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Image        string          `json:"image"`
	Category     string          `json:"category"`
	Discount     float64         `json:"discount"`
	Stock        int             `json:"stock"`
	StockMinimum int             `json:"stock_minimum"`
	Specs        json.RawMessage `json:"specifications,omitempty"`
}

type ProductResponse struct {
	Id             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	EffectivePrice float64 `json:"effective_price"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
	Discount       float64 `json:"discount"`
	Stock          int     `json:"stock"`
	StockMinimum   int     `json:"stock_minimum"`
	LowStock       bool    `json:"low_stock,omitempty"`
	Specs          any     `json:"specifications,omitempty"`
}

type PriceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id"`
}

type QuantityChangeRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type CartLineResponse struct {
	ProductID      int     `json:"product_id"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Discount       float64 `json:"discount"`
	EffectivePrice float64 `json:"effective_price"`
	Quantity       int     `json:"quantity"`
	Subtotal       float64 `json:"subtotal"`
}

type CartResponse struct {
	Token     string             `json:"token"`
	Lines     []CartLineResponse `json:"lines"`
	Total     float64            `json:"total"`
	ItemCount int                `json:"item_count"`
}

type ToggleWishlistRequest struct {
	ProductID int `json:"product_id"`
}

type WishlistEntryResponse struct {
	ProductID      int     `json:"product_id"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Discount       float64 `json:"discount"`
	EffectivePrice float64 `json:"effective_price"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
}

type WishlistResponse struct {
	Token   string                  `json:"token"`
	Entries []WishlistEntryResponse `json:"entries"`
	Count   int                     `json:"count"`
}

type CheckoutResponse struct {
	Order checkout.Order `json:"order"`
	Link  string         `json:"link"`
}

type InsufficientStockResponse struct {
	Error      string               `json:"error"`
	Shortfalls []checkout.Shortfall `json:"shortfalls"`
}

type ReviewRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type StockAdjustmentRequest struct {
	Delta  int    `json:"delta"` // can be positive or negative
	Reason string `json:"reason,omitempty"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type MovementResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}
