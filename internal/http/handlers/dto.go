package handlers

import "github.com/rogerio-castellano/inventory-manager/internal/models"

// ProductRequest is the request body for creating or updating a product.
// Quantity and Price are pointers so that an absent field is distinguishable
// from an explicit zero.
type ProductRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
}

type ProductResponse struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func productResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
