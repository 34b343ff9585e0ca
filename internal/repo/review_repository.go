package repo

import (
	"errors"

	"github.com/techhardware/storefront/internal/models"
)

// ErrReviewNotFound is returned when a review is not found in the repository.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for product review operations.
type ReviewRepository interface {
	Create(review models.Review) (models.Review, error)
	GetByProductID(productID int) ([]models.Review, error)
	MarkHelpful(id int) (models.Review, error)
}

// ReviewSummary aggregates the reviews shown on a product page.
type ReviewSummary struct {
	Average      float64     `json:"average"`
	Count        int         `json:"count"`
	Distribution map[int]int `json:"distribution"` // stars (1-5) -> count
}

// Summarize computes the average rating and star distribution.
func Summarize(reviews []models.Review) ReviewSummary {
	s := ReviewSummary{Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	if len(reviews) == 0 {
		return s
	}
	var total int
	for _, r := range reviews {
		total += r.Rating
		s.Distribution[r.Rating]++
	}
	s.Count = len(reviews)
	s.Average = float64(total) / float64(len(reviews))
	return s
}
