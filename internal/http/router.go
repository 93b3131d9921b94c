package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-manager/web"
)

// NewRouter wires the API routes, the swagger UI and the embedded SPA.
func NewRouter(h *handlers.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.GetProducts)
		r.Post("/products", h.CreateProduct)
		r.Get("/products/{id}", h.GetProductByID)
		r.Put("/products/{id}", h.UpdateProduct)
		r.Delete("/products/{id}", h.DeleteProduct)
		r.Get("/stats", h.GetStats)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	r.Handle("/*", http.FileServer(http.FS(web.Static())))

	return r
}
