package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/techhardware/storefront/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, name, description, price, image, category, discount, stock, stock_minimum, specifications`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var specs []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image,
		&p.Category, &p.Discount, &p.Stock, &p.StockMinimum, &specs)
	if err != nil {
		return models.Product{}, err
	}
	if len(specs) > 0 {
		p.Specs = &models.Specifications{}
		if err := json.Unmarshal(specs, p.Specs); err != nil {
			// Unreadable specifications are dropped, not fatal.
			p.Specs = nil
		}
	}
	return p, nil
}

func specsJSON(p models.Product) any {
	if p.Specs == nil {
		return nil
	}
	data, err := json.Marshal(p.Specs)
	if err != nil {
		return nil
	}
	return data
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, description, price, image, category, discount, stock, stock_minimum, specifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Price, p.Image,
		p.Category, p.Discount, p.Stock, p.StockMinimum, specsJSON(p), p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, description = $2, price = $3, image = $4,
		category = $5, discount = $6, stock = $7, stock_minimum = $8, specifications = $9, updated_at = $10
		WHERE id = $11`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.Price, p.Image,
		p.Category, p.Discount, p.Stock, p.StockMinimum, specsJSON(p), p.UpdatedAt, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AdjustStock applies delta to the product's stock, refusing to go below
// zero at the database so concurrent adjustments stay consistent.
func (r *PostgresProductRepository) AdjustStock(id, delta int) (models.Product, error) {
	query := `
		UPDATE products
		SET stock = stock + $1, updated_at = $2
		WHERE id = $3 AND stock + $1 >= 0
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, delta, time.Now().UTC().Format(time.RFC3339), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrInvalidStockChange
	}
	return p, err
}

// Stock reads the authoritative stock level. Cart adds and checkout
// revalidation call this instead of trusting any cached catalog snapshot.
func (r *PostgresProductRepository) Stock(ctx context.Context, id int) (int, error) {
	query := `SELECT stock FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var stock int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&stock)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrProductNotFound
	}
	return stock, err
}
