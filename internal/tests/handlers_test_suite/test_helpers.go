package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	handler "github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

var productRepo *repo.InMemoryProductRepository

func init() {
	productRepo = repo.NewInMemoryProductRepository()
}

func newRouter() http.Handler {
	return api.NewRouter(handler.New(productRepo))
}

func clearAllProducts() {
	productRepo.Clear()
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func updateProduct(r http.Handler, id int, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/products/%d", id), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func deleteProduct(r http.Handler, id int) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getProduct(r http.Handler, id int) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getProducts(r http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getStats(r http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
