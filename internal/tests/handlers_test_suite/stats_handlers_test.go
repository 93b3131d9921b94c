package handlers_test_suite

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

func TestGetStatsHandler_Empty(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := getStats(r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var s repo.Stats
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if s.TotalProducts != 0 || s.TotalItems != 0 || s.Categories != 0 || s.TotalValue != 0 {
		t.Errorf("expected all-zero stats on empty store, got %+v", s)
	}
}

func TestGetStatsHandler_Aggregates(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	products := []handler.ProductRequest{
		{Name: "Laptop Pro", Category: "Electronics", Quantity: intPtr(2), Price: floatPtr(1000)},
		{Name: "Mouse", Category: "Electronics", Quantity: intPtr(10), Price: floatPtr(25)},
		{Name: "Coffee Beans", Category: "Food", Quantity: intPtr(3), Price: floatPtr(10.50)},
	}
	for _, p := range products {
		if w := createProduct(r, p); w.Code != http.StatusCreated {
			t.Fatalf("expected 201 creating %q, got %d", p.Name, w.Code)
		}
	}

	w := getStats(r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var s repo.Stats
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if s.TotalProducts != 3 {
		t.Errorf("expected total_products 3, got %d", s.TotalProducts)
	}
	if s.TotalItems != 15 {
		t.Errorf("expected total_items 15, got %d", s.TotalItems)
	}
	if s.Categories != 2 {
		t.Errorf("expected categories 2, got %d", s.Categories)
	}
	if want := 2*1000.0 + 10*25.0 + 3*10.50; math.Abs(s.TotalValue-want) > 1e-9 {
		t.Errorf("expected total_value %.2f, got %.2f", want, s.TotalValue)
	}
}

func TestGetStatsHandler_TracksMutations(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Cable", Category: "Electronics", Quantity: intPtr(5), Price: floatPtr(4)})
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if w := deleteProduct(r, created.Id); w.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting product, got %d", w.Code)
	}

	statsW := getStats(r)
	var s repo.Stats
	if err := json.NewDecoder(statsW.Body).Decode(&s); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if s.TotalProducts != 0 || s.TotalItems != 0 || s.TotalValue != 0 {
		t.Errorf("expected stats back to zero after delete, got %+v", s)
	}
}
