package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Discount < 0 || p.Discount > 100 {
		errs = append(errs, ProductValidationError{Field: "Discount", Description: "Discount must be between 0 and 100"})
	}
	if p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	if p.StockMinimum < 0 {
		errs = append(errs, ProductValidationError{Field: "StockMinimum", Description: "Stock minimum cannot be negative"})
	}
	return errs
}

func validateReview(r ReviewRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, ProductValidationError{Field: "Rating", Description: "Rating must be between 1 and 5"})
	}
	if strings.TrimSpace(r.Comment) == "" {
		errs = append(errs, ProductValidationError{Field: "Comment", Description: "Comment is required"})
	}
	return errs
}
