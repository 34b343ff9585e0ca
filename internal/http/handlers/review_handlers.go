package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/techhardware/storefront/internal/models"
	"github.com/techhardware/storefront/internal/repo"
)

type ReviewsResult struct {
	Data    []models.Review    `json:"data"`
	Summary repo.ReviewSummary `json:"summary"`
}

// GetReviewsHandler godoc
// @Summary Reviews for a product, newest first, with rating summary
// @Tags reviews
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ReviewsResult
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/reviews [get]
func GetReviewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if _, err := productRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	reviews, err := reviewRepo.GetByProductID(id)
	if err != nil {
		http.Error(w, "could not fetch reviews", http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ReviewsResult{Data: reviews, Summary: repo.Summarize(reviews)})
}

// CreateReviewHandler godoc
// @Summary Leave a review on a product
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param review body ReviewRequest true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} []ProductValidationError
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/reviews [post]
func CreateReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateReview(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	if _, err := productRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	created, err := reviewRepo.Create(models.Review{
		ProductID: id,
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		http.Error(w, "could not create review", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// MarkReviewHelpfulHandler godoc
// @Summary Mark a review as helpful
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Review
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Review not found"
// @Failure 500 {string} string "Internal error"
// @Router /reviews/{id}/helpful [post]
func MarkReviewHelpfulHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid review ID", http.StatusBadRequest)
		return
	}

	review, err := reviewRepo.MarkHelpful(id)
	if err != nil {
		if errors.Is(err, repo.ErrReviewNotFound) {
			http.Error(w, "review not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update review", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(review)
}
