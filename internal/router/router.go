// Package router wires the catalog API routes onto a Chi router with
// the shared middleware stack.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"katalog/internal/handlers"
	"katalog/internal/middleware"
)

// New creates the configured Chi router.
func New(category *handlers.Category, product *handlers.Product) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	r.Route("/category", func(r chi.Router) {
		r.Get("/", category.List)
		r.Post("/", category.Create)
		r.Put("/{id}", category.Update)
		r.Delete("/{id}", category.Delete)
	})

	r.Route("/product", func(r chi.Router) {
		r.Get("/", product.List)
		r.Post("/", product.Create)
		// Static "category" segment must be declared alongside the
		// {id} wildcard; chi matches it first.
		r.Get("/category/{categoryID}", product.GetByCategory)
		r.Get("/{id}", product.GetByID)
		r.Put("/{id}", product.Update)
		r.Delete("/{id}", product.Delete)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
