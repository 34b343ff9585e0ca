package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/techhardware/storefront/internal/models"
)

type PostgresReviewRepository struct {
	db *sql.DB
}

func NewPostgresReviewRepository(db *sql.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (r *PostgresReviewRepository) Create(review models.Review) (models.Review, error) {
	query := `INSERT INTO reviews (product_id, name, rating, comment, helpful, created_at)
		VALUES ($1, $2, $3, $4, 0, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	review.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	err := r.db.QueryRowContext(ctx, query, review.ProductID, review.Name,
		review.Rating, review.Comment, review.CreatedAt).Scan(&review.ID)
	return review, err
}

func (r *PostgresReviewRepository) GetByProductID(productID int) ([]models.Review, error) {
	query := `SELECT id, product_id, name, rating, comment, helpful, created_at
		FROM reviews WHERE product_id = $1 ORDER BY created_at DESC, id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.Name, &rev.Rating,
			&rev.Comment, &rev.Helpful, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *PostgresReviewRepository) MarkHelpful(id int) (models.Review, error) {
	query := `UPDATE reviews SET helpful = helpful + 1 WHERE id = $1
		RETURNING id, product_id, name, rating, comment, helpful, created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var rev models.Review
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rev.ID, &rev.ProductID,
		&rev.Name, &rev.Rating, &rev.Comment, &rev.Helpful, &rev.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, ErrReviewNotFound
	}
	return rev, err
}
