package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/techhardware/storefront/internal/models"
)

type PostgresStockLogRepository struct {
	db *sql.DB
}

func NewPostgresStockLogRepository(db *sql.DB) *PostgresStockLogRepository {
	return &PostgresStockLogRepository{db: db}
}

func (r *PostgresStockLogRepository) Record(productID, delta int, reason string) error {
	query := `INSERT INTO stock_movements (product_id, delta, reason, created_at) VALUES ($1, $2, $3, $4)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, productID, delta, reason, time.Now().UTC())
	return err
}

func (r *PostgresStockLogRepository) GetByProductID(productID int, f StockLogFilter) ([]models.StockMovement, int, error) {
	conditions := ""
	args := []any{productID}
	argIdx := 2

	if f.Since != nil {
		conditions += fmt.Sprintf(" AND created_at >= $%d", argIdx)
		args = append(args, f.Since)
		argIdx++
	}
	if f.Until != nil {
		conditions += fmt.Sprintf(" AND created_at <= $%d", argIdx)
		args = append(args, f.Until)
		argIdx++
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM stock_movements WHERE product_id = $1` + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, product_id, delta, reason, created_at FROM stock_movements WHERE product_id = $1` +
		conditions + " ORDER BY id"

	if f.Limit != nil && *f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, f.Limit)
		argIdx++
	}
	if f.Offset != nil && *f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var movements []models.StockMovement
	for rows.Next() {
		var m models.StockMovement
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Delta, &m.Reason, &createdAt); err != nil {
			return nil, 0, err
		}
		m.CreatedAt = createdAt.Format(time.RFC3339)
		movements = append(movements, m)
	}

	return movements, totalCount, rows.Err()
}
