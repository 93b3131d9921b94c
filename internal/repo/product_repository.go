package repo

import (
	"errors"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// ErrProductNotFound is returned when no product exists for the given ID.
var ErrProductNotFound = errors.New("product not found")

// Stats holds the aggregates computed over the whole product set at request
// time. All fields are zero on an empty store.
type Stats struct {
	TotalProducts int     `json:"total_products"`
	TotalItems    int     `json:"total_items"`
	Categories    int     `json:"categories"`
	TotalValue    float64 `json:"total_value"`
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	Stats() (Stats, error)
}
