package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/techhardware/storefront/internal/auth"
	"github.com/techhardware/storefront/internal/models"
	"github.com/techhardware/storefront/internal/repo"
)

// AdminLoginHandler godoc
// @Summary Log in to the admin panel
// @Description Checks the single configured admin credential and issues
// @Description a short-lived session token.
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body AdminLoginRequest true "Credentials"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 500 {string} string "Internal error"
// @Router /admin/login [post]
func AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if req.Username != adminUser ||
		bcrypt.CompareHashAndPassword([]byte(adminPasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateAdminToken(req.Username)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResult{Token: token})
}

func productFromRequest(req ProductRequest) models.Product {
	p := models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Image:        req.Image,
		Category:     req.Category,
		Discount:     req.Discount,
		Stock:        req.Stock,
		StockMinimum: req.StockMinimum,
	}
	if len(req.Specs) > 0 {
		// Resolve the free-form specifications shape once, at ingestion.
		specs := &models.Specifications{}
		if err := json.Unmarshal(req.Specs, specs); err == nil {
			p.Specs = specs
		}
	}
	return p
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} []ProductValidationError
// @Failure 500 {string} string "Internal error"
// @Router /admin/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := productFromRequest(req)
	product.CreatedAt = time.Now().Format(time.RFC3339)
	product.UpdatedAt = product.CreatedAt

	created, err := productRepo.Create(product)
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(productResponse(created))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} []ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := productFromRequest(req)
	product.ID = id
	product.UpdatedAt = time.Now().Format(time.RFC3339)

	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(productResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdjustStockHandler godoc
// @Summary Adjust the stock of a product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param adjustment body StockAdjustmentRequest true "Stock change"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Stock cannot go negative"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id}/stock [post]
func AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req StockAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := productRepo.AdjustStock(id, req.Delta)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidStockChange) {
			http.Error(w, "stock cannot be negative", http.StatusConflict)
			return
		}
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update stock", http.StatusInternalServerError)
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "manual"
	}
	_ = stockLogRepo.Record(id, req.Delta, reason)

	if product.LowStock() {
		log.Printf("ALERT: product %d (%s) is at low stock: %d left, minimum %d",
			product.ID, product.Name, product.Stock, product.StockMinimum)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(productResponse(product))
}

// GetStockMovementsHandler godoc
// @Summary Stock movement log for a product
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param since query string false "From timestamp (RFC3339)"
// @Param until query string false "Until timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id}/movements [get]
func GetStockMovementsHandler(w http.ResponseWriter, r *http.Request) {
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

	filter := repo.StockLogFilter{
		Offset: parseIntPtr(r.URL.Query().Get("offset")),
		Limit:  parseIntPtr(r.URL.Query().Get("limit")),
	}
	if s := r.URL.Query().Get("since"); s != "" {
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid since date format", http.StatusBadRequest)
			return
		}
		filter.Since = &ts
	}
	if s := r.URL.Query().Get("until"); s != "" {
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid until date format", http.StatusBadRequest)
			return
		}
		filter.Until = &ts
	}
	if filter.Limit != nil && *filter.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	movements, total, err := stockLogRepo.GetByProductID(id, filter)
	if err != nil {
		log.Printf("could not retrieve movements for product %d: %v", id, err)
		http.Error(w, "could not retrieve movements", http.StatusInternalServerError)
		return
	}

	response := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		response.Data[i] = MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Delta:     m.Delta,
			Reason:    m.Reason,
			CreatedAt: m.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
