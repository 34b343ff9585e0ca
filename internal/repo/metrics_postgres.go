package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetStockSummary() (StockSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s StockSummary

	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE stock > stock_minimum),
			COUNT(*) FILTER (WHERE stock > 0 AND stock <= stock_minimum),
			COUNT(*) FILTER (WHERE stock = 0),
			COUNT(*) FILTER (WHERE discount > 0)
		FROM products
	`).Scan(&s.TotalProducts, &s.InStock, &s.LowStock, &s.OutOfStock, &s.Discounted)
	if err != nil {
		return s, err
	}

	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&s.Adjustments)

	return s, nil
}
