// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"katalog/internal/models"
)

// ProductStore is the persistence surface the product handler needs.
// *store.ProductStore satisfies it; tests substitute mocks.
type ProductStore interface {
	List() ([]models.Product, error)
	FindByID(id int64) (*models.Product, error)
	ListByCategory(categoryID int64) ([]models.Product, error)
	Create(p *models.Product) (*models.Product, error)
	Update(id int64, p *models.Product) (*models.Product, error)
	Delete(id int64) (bool, error)
	ExistsByNameExcept(name string, excludeID int64) (bool, error)
}

// CategoryChecker verifies a referenced category exists.
type CategoryChecker interface {
	ExistsByID(id int64) (bool, error)
}

// Product handles the /product resource.
type Product struct {
	products   ProductStore
	categories CategoryChecker
}

// NewProduct returns a Product handler backed by the given stores.
func NewProduct(products ProductStore, categories CategoryChecker) *Product {
	return &Product{products: products, categories: categories}
}

// productRequest is the body for create and update. Fields are pointers
// so presence can be checked: an explicit false or 0 still counts as
// provided, only an absent key is rejected.
type productRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Currency    *string          `json:"currency"`
	Quantity    *int             `json:"quantity"`
	Active      *bool            `json:"active"`
	CategoryID  *int64           `json:"category_id"`
}

// List responds with every product, each carrying its embedded category
// object (null when the category row is missing).
func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.products.List()
	if err != nil {
		respondInternalError(w, "list products", err)
		return
	}
	respondJSON(w, http.StatusOK, productResponses(items))
}

// GetByID responds with a single product or 404.
func (h *Product) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	p, err := h.products.FindByID(id)
	if err != nil {
		respondInternalError(w, "find product", err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, p.Response())
}

// GetByCategory responds with the products of one category, or 404 when
// the category itself does not exist. An existing category with no
// products yields an empty array.
func (h *Product) GetByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r, "categoryID")
	if !ok {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	exists, err := h.categories.ExistsByID(categoryID)
	if err != nil {
		respondInternalError(w, "check category", err)
		return
	}
	if !exists {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	items, err := h.products.ListByCategory(categoryID)
	if err != nil {
		respondInternalError(w, "list products by category", err)
		return
	}
	respondJSON(w, http.StatusOK, productResponses(items))
}

// Create inserts a new product. Name, price and category_id are
// required, the referenced category must exist, and the remaining
// fields default: description null, currency "Rp", quantity 0,
// active true.
func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	switch {
	case req.Name == nil || *req.Name == "":
		respondError(w, http.StatusUnprocessableEntity, "name is required")
		return
	case req.Price == nil:
		respondError(w, http.StatusUnprocessableEntity, "price is required")
		return
	case req.CategoryID == nil:
		respondError(w, http.StatusUnprocessableEntity, "category_id is required")
		return
	}

	exists, err := h.categories.ExistsByID(*req.CategoryID)
	if err != nil {
		respondInternalError(w, "check category", err)
		return
	}
	if !exists {
		respondError(w, http.StatusUnprocessableEntity, "category not found")
		return
	}

	p := &models.Product{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Currency:    models.DefaultCurrency,
		Quantity:    0,
		Active:      true,
		CategoryID:  *req.CategoryID,
	}
	if req.Currency != nil {
		p.Currency = *req.Currency
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	created, err := h.products.Create(p)
	if err != nil {
		respondInternalError(w, "create product", err)
		return
	}
	respondJSON(w, http.StatusCreated, created.Response())
}

// Update replaces a product wholesale. Every field must be present in
// the body; partial updates are rejected. The name uniqueness check
// excludes the row being updated.
func (h *Product) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	if req.Name == nil || *req.Name == "" || req.Description == nil ||
		req.Price == nil || req.Currency == nil || req.Quantity == nil ||
		req.Active == nil || req.CategoryID == nil {
		respondError(w, http.StatusUnprocessableEntity, "all fields are required")
		return
	}

	exists, err := h.products.ExistsByNameExcept(*req.Name, id)
	if err != nil {
		respondInternalError(w, "check product name", err)
		return
	}
	if exists {
		respondError(w, http.StatusConflict, fmt.Sprintf("product %s already exists", *req.Name))
		return
	}

	p := &models.Product{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Currency:    *req.Currency,
		Quantity:    *req.Quantity,
		Active:      *req.Active,
		CategoryID:  *req.CategoryID,
	}

	updated, err := h.products.Update(id, p)
	if err != nil {
		respondInternalError(w, "update product", err)
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusCreated, updated.Response())
}

// Delete removes a product by id. Success is 204 with no body.
func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	removed, err := h.products.Delete(id)
	if err != nil {
		respondInternalError(w, "delete product", err)
		return
	}
	if !removed {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// productResponses converts store rows to wire shapes, keeping empty
// results as [] rather than null.
func productResponses(items []models.Product) []models.ProductResponse {
	resp := make([]models.ProductResponse, 0, len(items))
	for i := range items {
		resp = append(resp, items[i].Response())
	}
	return resp
}
