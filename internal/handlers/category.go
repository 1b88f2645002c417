// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers maps the catalog HTTP resources to store calls and
// translates store results into status codes and JSON bodies.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"katalog/internal/models"
)

// CategoryStore is the persistence surface the category handler needs.
// *store.CategoryStore satisfies it; tests substitute mocks.
type CategoryStore interface {
	List() ([]models.Category, error)
	Create(name string) (*models.Category, error)
	Update(id int64, name string) (*models.Category, error)
	Delete(id int64) (*models.Category, error)
	ExistsByName(name string) (bool, error)
	ExistsByNameExcept(name string, excludeID int64) (bool, error)
}

// ProductCounter reports how many products reference a category.
type ProductCounter interface {
	CountByCategory(categoryID int64) (int, error)
}

// Category handles the /category resource.
type Category struct {
	categories CategoryStore
	products   ProductCounter
}

// NewCategory returns a Category handler backed by the given stores.
func NewCategory(categories CategoryStore, products ProductCounter) *Category {
	return &Category{categories: categories, products: products}
}

// categoryRequest is the body for create and update.
type categoryRequest struct {
	Name string `json:"name"`
}

// List responds with every category.
func (h *Category) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.List()
	if err != nil {
		respondInternalError(w, "list categories", err)
		return
	}

	resp := make([]models.CategoryResponse, 0, len(items))
	for i := range items {
		resp = append(resp, items[i].Response())
	}
	respondJSON(w, http.StatusOK, resp)
}

// Create inserts a new category after validating name presence and
// uniqueness.
func (h *Category) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		respondError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	exists, err := h.categories.ExistsByName(req.Name)
	if err != nil {
		respondInternalError(w, "check category name", err)
		return
	}
	if exists {
		respondError(w, http.StatusConflict, fmt.Sprintf("category %s already exists", req.Name))
		return
	}

	created, err := h.categories.Create(req.Name)
	if err != nil {
		respondInternalError(w, "create category", err)
		return
	}
	respondJSON(w, http.StatusCreated, created.Response())
}

// Update renames a category. The uniqueness check excludes the row being
// updated, so renaming a category to its current name succeeds.
func (h *Category) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		respondError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	exists, err := h.categories.ExistsByNameExcept(req.Name, id)
	if err != nil {
		respondInternalError(w, "check category name", err)
		return
	}
	if exists {
		respondError(w, http.StatusConflict, fmt.Sprintf("category %s already exists", req.Name))
		return
	}

	updated, err := h.categories.Update(id, req.Name)
	if err != nil {
		respondInternalError(w, "update category", err)
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}
	respondJSON(w, http.StatusCreated, updated.Response())
}

// Delete removes a category unless products still reference it.
func (h *Category) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	count, err := h.products.CountByCategory(id)
	if err != nil {
		respondInternalError(w, "count category products", err)
		return
	}
	if count > 0 {
		respondError(w, http.StatusConflict, fmt.Sprintf("category is referenced by %d product(s)", count))
		return
	}

	deleted, err := h.categories.Delete(id)
	if err != nil {
		respondInternalError(w, "delete category", err)
		return
	}
	if deleted == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}
	respondJSON(w, http.StatusCreated, deleted.Response())
}
