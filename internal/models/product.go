package models

// Product represents a catalog product as owned by the store database.
// Stock and StockMinimum drive the low-stock flag shown in the admin panel.
type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Image        string          `json:"image"`
	Category     string          `json:"category"`
	Discount     float64         `json:"discount"` // percent, 0-100
	Stock        int             `json:"stock"`
	StockMinimum int             `json:"stock_minimum"`
	Specs        *Specifications `json:"specifications,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	UpdatedAt    string          `json:"updated_at,omitempty"`
}

// LowStock reports whether the product is at or below its restock minimum
// while still having units left.
func (p Product) LowStock() bool {
	return p.Stock > 0 && p.Stock <= p.StockMinimum
}
