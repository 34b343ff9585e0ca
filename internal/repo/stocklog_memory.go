package repo

import (
	"sync"
	"time"

	"github.com/techhardware/storefront/internal/models"
)

type InMemoryStockLogRepository struct {
	mu        sync.Mutex
	movements []models.StockMovement
}

func NewInMemoryStockLogRepository() *InMemoryStockLogRepository {
	return &InMemoryStockLogRepository{
		movements: []models.StockMovement{},
	}
}

// Record inserts a new stock movement.
func (r *InMemoryStockLogRepository) Record(productID, delta int, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, models.StockMovement{
		ID:        len(r.movements) + 1,
		ProductID: productID,
		Delta:     delta,
		Reason:    reason,
		CreatedAt: time.Now().Format(time.RFC3339),
	})
	return nil
}

// GetByProductID returns the movements for a product, optionally filtered
// by date range and paginated.
func (r *InMemoryStockLogRepository) GetByProductID(productID int, f StockLogFilter) ([]models.StockMovement, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.StockMovement
	for _, m := range r.movements {
		if m.ProductID != productID {
			continue
		}
		if (f.Since != nil && m.CreatedAt < f.Since.Format(time.RFC3339)) ||
			(f.Until != nil && m.CreatedAt > f.Until.Format(time.RFC3339)) {
			continue
		}
		filtered = append(filtered, m)
	}

	if f.Offset != nil && *f.Offset > len(filtered) {
		return nil, 0, nil
	}

	start := 0
	if f.Offset != nil {
		start = clamp(*f.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if f.Limit != nil && *f.Limit > 0 {
		end = clamp(start+*f.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
