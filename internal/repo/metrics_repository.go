package repo

// StockSummary is the admin dashboard view of catalog health.
type StockSummary struct {
	TotalProducts int `json:"total_products"`
	InStock       int `json:"in_stock"`       // stock above the restock minimum
	LowStock      int `json:"low_stock"`      // some units left, at or below minimum
	OutOfStock    int `json:"out_of_stock"`   // zero units
	Discounted    int `json:"discounted"`     // active discount
	Adjustments   int `json:"adjustments"`    // recorded stock movements
}

type MetricsRepository interface {
	GetStockSummary() (StockSummary, error)
}
