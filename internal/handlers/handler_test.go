// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides mock stores and request helpers for handler
// unit tests. The mocks satisfy the store interfaces the handlers
// declare, so no database is needed here.
package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"katalog/internal/models"
)

// --- Category mocks ---

type mockCategoryStore struct {
	rows     map[int64]models.Category
	nextID   int64
	failWith error
}

func newMockCategoryStore(rows ...models.Category) *mockCategoryStore {
	m := &mockCategoryStore{rows: make(map[int64]models.Category), nextID: 1}
	for _, c := range rows {
		m.rows[c.ID] = c
		if c.ID >= m.nextID {
			m.nextID = c.ID + 1
		}
	}
	return m
}

func (m *mockCategoryStore) List() ([]models.Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		items = append(items, m.rows[id])
	}
	return items, nil
}

func (m *mockCategoryStore) Create(name string) (*models.Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	now := time.Now()
	c := models.Category{ID: m.nextID, Name: name, CreatedDate: now, UpdatedDate: now}
	m.rows[c.ID] = c
	m.nextID++
	return &c, nil
}

func (m *mockCategoryStore) Update(id int64, name string) (*models.Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	c.Name = name
	c.UpdatedDate = time.Now()
	m.rows[id] = c
	return &c, nil
}

func (m *mockCategoryStore) Delete(id int64) (*models.Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	delete(m.rows, id)
	return &c, nil
}

func (m *mockCategoryStore) ExistsByID(id int64) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	_, ok := m.rows[id]
	return ok, nil
}

func (m *mockCategoryStore) ExistsByName(name string) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	for _, c := range m.rows {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCategoryStore) ExistsByNameExcept(name string, excludeID int64) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	for id, c := range m.rows {
		if c.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// mockProductCounter reports canned per-category product counts.
type mockProductCounter struct {
	counts map[int64]int
}

func (m *mockProductCounter) CountByCategory(categoryID int64) (int, error) {
	return m.counts[categoryID], nil
}

// --- Product mocks ---

type mockProductStore struct {
	rows        map[int64]models.Product
	nextID      int64
	lastCreated *models.Product
	failWith    error
}

func newMockProductStore(rows ...models.Product) *mockProductStore {
	m := &mockProductStore{rows: make(map[int64]models.Product), nextID: 1}
	for _, p := range rows {
		m.rows[p.ID] = p
		if p.ID >= m.nextID {
			m.nextID = p.ID + 1
		}
	}
	return m
}

func (m *mockProductStore) List() ([]models.Product, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		items = append(items, m.rows[id])
	}
	return items, nil
}

func (m *mockProductStore) FindByID(id int64) (*models.Product, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockProductStore) ListByCategory(categoryID int64) ([]models.Product, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var items []models.Product
	for _, p := range m.rows {
		if p.CategoryID == categoryID {
			items = append(items, p)
		}
	}
	return items, nil
}

func (m *mockProductStore) Create(p *models.Product) (*models.Product, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	now := time.Now()
	created := *p
	created.ID = m.nextID
	created.CreatedDate = now
	created.UpdatedDate = now
	m.rows[created.ID] = created
	m.nextID++
	m.lastCreated = &created
	return &created, nil
}

func (m *mockProductStore) Update(id int64, p *models.Product) (*models.Product, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	existing, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	updated := *p
	updated.ID = id
	updated.CreatedDate = existing.CreatedDate
	updated.UpdatedDate = time.Now()
	m.rows[id] = updated
	return &updated, nil
}

func (m *mockProductStore) Delete(id int64) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *mockProductStore) CountByCategory(categoryID int64) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	count := 0
	for _, p := range m.rows {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *mockProductStore) ExistsByNameExcept(name string, excludeID int64) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	for id, p := range m.rows {
		if p.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// --- Request helpers ---

// categoryRoutes mounts the category handler the way the router does.
func categoryRoutes(h *Category) chi.Router {
	r := chi.NewRouter()
	r.Get("/category", h.List)
	r.Post("/category", h.Create)
	r.Put("/category/{id}", h.Update)
	r.Delete("/category/{id}", h.Delete)
	return r
}

// productRoutes mounts the product handler the way the router does.
func productRoutes(h *Product) chi.Router {
	r := chi.NewRouter()
	r.Get("/product", h.List)
	r.Post("/product", h.Create)
	r.Get("/product/category/{categoryID}", h.GetByCategory)
	r.Get("/product/{id}", h.GetByID)
	r.Put("/product/{id}", h.Update)
	r.Delete("/product/{id}", h.Delete)
	return r
}

// doRequest performs an in-memory request against the given routes.
func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
