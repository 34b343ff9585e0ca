package repo

import (
	"context"
	"errors"

	"github.com/techhardware/storefront/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidStockChange is returned when an adjustment would drive stock
// below zero.
var ErrInvalidStockChange = errors.New("stock cannot go below zero")

// ProductRepository defines the interface for product data operations.
// Stock takes a context because it is the remote-truth read consulted on
// every cart add and checkout revalidation.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	AdjustStock(id, delta int) (models.Product, error)
	Stock(ctx context.Context, id int) (int, error)
}
