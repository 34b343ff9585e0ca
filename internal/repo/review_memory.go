package repo

import (
	"sync"
	"time"

	"github.com/techhardware/storefront/internal/models"
)

type InMemoryReviewRepository struct {
	mu      sync.Mutex
	reviews []models.Review
	nextID  int
}

func NewInMemoryReviewRepository() *InMemoryReviewRepository {
	return &InMemoryReviewRepository{
		reviews: []models.Review{},
		nextID:  1,
	}
}

func (r *InMemoryReviewRepository) Create(review models.Review) (models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.ID = r.nextID
	r.nextID++
	if review.CreatedAt == "" {
		review.CreatedAt = time.Now().Format(time.RFC3339)
	}
	r.reviews = append(r.reviews, review)
	return review, nil
}

// GetByProductID returns reviews newest first.
func (r *InMemoryReviewRepository) GetByProductID(productID int) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for i := len(r.reviews) - 1; i >= 0; i-- {
		if r.reviews[i].ProductID == productID {
			out = append(out, r.reviews[i])
		}
	}
	return out, nil
}

func (r *InMemoryReviewRepository) MarkHelpful(id int) (models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rev := range r.reviews {
		if rev.ID == id {
			r.reviews[i].Helpful++
			return r.reviews[i], nil
		}
	}
	return models.Review{}, ErrReviewNotFound
}
