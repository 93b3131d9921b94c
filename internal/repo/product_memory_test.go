package repo

import (
	"errors"
	"math"
	"testing"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

func TestCreateAndGetByID(t *testing.T) {
	r := NewInMemoryProductRepository()

	input := models.Product{
		Name:        "Desk Lamp",
		Category:    "Office Supplies",
		Quantity:    5,
		Price:       19.99,
		Description: "LED lamp",
	}
	created, err := r.Create(input)
	if err != nil {
		t.Fatalf("unexpected error creating product: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a non-zero ID to be assigned")
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Error("expected timestamps to be set on create")
	}

	got, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error fetching product: %v", err)
	}
	if got.Name != input.Name || got.Category != input.Category ||
		got.Quantity != input.Quantity || got.Price != input.Price ||
		got.Description != input.Description {
		t.Errorf("fetched product does not match input: got %+v", got)
	}
}

func TestGetAllOrdering(t *testing.T) {
	r := NewInMemoryProductRepository()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		if _, err := r.Create(models.Product{Name: name, Category: "Misc"}); err != nil {
			t.Fatalf("unexpected error creating %q: %v", name, err)
		}
	}

	products, err := r.GetAll()
	if err != nil {
		t.Fatalf("unexpected error fetching products: %v", err)
	}
	if len(products) != len(names) {
		t.Fatalf("expected %d products, got %d", len(names), len(products))
	}
	for i, p := range products {
		if p.Name != names[i] {
			t.Errorf("expected product %d to be %q, got %q", i, names[i], p.Name)
		}
		if i > 0 && products[i-1].ID >= p.ID {
			t.Errorf("expected ascending IDs, got %d before %d", products[i-1].ID, p.ID)
		}
	}
}

func TestUpdate(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, _ := r.Create(models.Product{Name: "Chair", Category: "Furniture", Quantity: 2, Price: 45})

	updated, err := r.Update(models.Product{
		ID:          created.ID,
		Name:        "Office Chair",
		Category:    "Office Supplies",
		Quantity:    3,
		Price:       55.50,
		Description: "Ergonomic",
	})
	if err != nil {
		t.Fatalf("unexpected error updating product: %v", err)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Errorf("expected creation timestamp to be preserved, got %q want %q", updated.CreatedAt, created.CreatedAt)
	}

	got, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error fetching product: %v", err)
	}
	if got.Name != "Office Chair" || got.Category != "Office Supplies" ||
		got.Quantity != 3 || got.Price != 55.50 || got.Description != "Ergonomic" {
		t.Errorf("update not reflected on fetch: got %+v", got)
	}
}

func TestUpdateNotFound(t *testing.T) {
	r := NewInMemoryProductRepository()

	_, err := r.Update(models.Product{ID: 42, Name: "Ghost", Category: "Misc"})
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, _ := r.Create(models.Product{Name: "Mouse", Category: "Electronics", Quantity: 1, Price: 25})

	if err := r.Delete(created.ID); err != nil {
		t.Fatalf("unexpected error deleting product: %v", err)
	}
	if _, err := r.GetByID(created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := r.Delete(created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound deleting twice, got %v", err)
	}
}

func TestStatsEmpty(t *testing.T) {
	r := NewInMemoryProductRepository()

	s, err := r.Stats()
	if err != nil {
		t.Fatalf("unexpected error computing stats: %v", err)
	}
	if s.TotalProducts != 0 || s.TotalItems != 0 || s.Categories != 0 || s.TotalValue != 0 {
		t.Errorf("expected all-zero stats on empty store, got %+v", s)
	}
}

func TestStatsAggregates(t *testing.T) {
	r := NewInMemoryProductRepository()

	r.Create(models.Product{Name: "Laptop", Category: "Electronics", Quantity: 2, Price: 1000})
	r.Create(models.Product{Name: "Mouse", Category: "Electronics", Quantity: 10, Price: 25})
	r.Create(models.Product{Name: "Beans", Category: "Food", Quantity: 3, Price: 10.50})

	s, err := r.Stats()
	if err != nil {
		t.Fatalf("unexpected error computing stats: %v", err)
	}
	if s.TotalProducts != 3 {
		t.Errorf("expected 3 products, got %d", s.TotalProducts)
	}
	if s.TotalItems != 15 {
		t.Errorf("expected 15 total items, got %d", s.TotalItems)
	}
	if s.Categories != 2 {
		t.Errorf("expected 2 categories, got %d", s.Categories)
	}
	if want := 2*1000.0 + 10*25.0 + 3*10.50; math.Abs(s.TotalValue-want) > 1e-9 {
		t.Errorf("expected total value %.2f, got %.2f", want, s.TotalValue)
	}
}

func TestSeedSampleProducts(t *testing.T) {
	r := NewInMemoryProductRepository()
	r.SeedSampleProducts()

	products, err := r.GetAll()
	if err != nil {
		t.Fatalf("unexpected error fetching products: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected seeded products")
	}
	for _, p := range products {
		if p.Name == "" || p.Category == "" {
			t.Errorf("seeded product missing required fields: %+v", p)
		}
		if p.Quantity < 0 || p.Price < 0 {
			t.Errorf("seeded product has negative values: %+v", p)
		}
	}
}
