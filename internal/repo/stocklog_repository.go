package repo

import (
	"time"

	"github.com/techhardware/storefront/internal/models"
)

// StockLogFilter narrows and paginates stock movement queries.
type StockLogFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

// StockLogRepository records every stock change made through the admin
// panel so adjustments stay auditable.
type StockLogRepository interface {
	Record(productID, delta int, reason string) error
	GetByProductID(productID int, f StockLogFilter) ([]models.StockMovement, int, error)
}
