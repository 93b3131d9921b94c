package repo

import (
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. It backs the ephemeral deployment variant and the
// handler test suite; its contents are lost on restart.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates an empty InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// SeedSampleProducts loads the fixed demo rows served when no external
// database is configured.
func (r *InMemoryProductRepository) SeedSampleProducts() {
	samples := []models.Product{
		{Name: "Laptop Pro 15", Category: "Electronics", Quantity: 12, Price: 1299.99, Description: "15-inch developer laptop"},
		{Name: "Standing Desk", Category: "Furniture", Quantity: 4, Price: 349.50, Description: "Height-adjustable desk"},
		{Name: "Coffee Beans 1kg", Category: "Food", Quantity: 25, Price: 18.90, Description: "Whole arabica beans"},
		{Name: "Desk Lamp", Category: "Office Supplies", Quantity: 8, Price: 19.99, Description: "LED lamp with dimmer"},
	}
	for _, p := range samples {
		r.Create(p)
	}
}

// Create adds a new product, assigning the next integer ID and both
// timestamps.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	product.ID = r.nextID
	product.CreatedAt = now
	product.UpdatedAt = now
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products in insertion order (ascending ID).
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update replaces the mutable fields of an existing product. The original
// creation timestamp is preserved and updated_at is refreshed.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			product.CreatedAt = p.CreatedAt
			product.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Stats computes the dashboard aggregates over the current product set.
func (r *InMemoryProductRepository) Stats() (Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Stats{TotalProducts: len(r.products)}
	categories := make(map[string]struct{})
	for _, p := range r.products {
		s.TotalItems += p.Quantity
		s.TotalValue += float64(p.Quantity) * p.Price
		categories[p.Category] = struct{}{}
	}
	s.Categories = len(categories)
	return s, nil
}

// Clear removes every product. Used by the test suite between cases.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
	r.nextID = 1
}
