package models

// StockMovement records a change to a product's stock level, with the
// reason it happened (manual adjustment, CSV import, correction).
type StockMovement struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}
