package handlers

import (
	repo "github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// Handler bundles the HTTP handlers with the storage layer they operate on.
// The repository is passed in explicitly so the binary and the tests decide
// which implementation backs the routes.
type Handler struct {
	products repo.ProductRepository
}

func New(products repo.ProductRepository) *Handler {
	return &Handler{products: products}
}
