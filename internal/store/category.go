// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for catalog entities. All
// queries are parameterized; values are never concatenated into SQL.
package store

import (
	"database/sql"
	"fmt"

	"katalog/internal/models"
)

// CategoryStore manages rows in the category table.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, created_date, updated_date`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	if err := scanner.Scan(&c.ID, &c.Name, &c.CreatedDate, &c.UpdatedDate); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories ordered by id.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM category ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Create inserts a new category with server-assigned timestamps and
// returns the created row.
func (s *CategoryStore) Create(name string) (*models.Category, error) {
	row := s.db.QueryRow(`
		INSERT INTO category (name, created_date, updated_date)
		VALUES ($1, now(), now())
		RETURNING `+categoryColumns,
		name,
	)
	c, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// Update renames a category and refreshes updated_date. Returns nil if
// no row matched the id.
func (s *CategoryStore) Update(id int64, name string) (*models.Category, error) {
	row := s.db.QueryRow(`
		UPDATE category SET name = $1, updated_date = now()
		WHERE id = $2
		RETURNING `+categoryColumns,
		name, id,
	)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes a category by id and returns the deleted row. Returns
// nil if no row matched.
func (s *CategoryStore) Delete(id int64) (*models.Category, error) {
	row := s.db.QueryRow(`
		DELETE FROM category WHERE id = $1
		RETURNING `+categoryColumns,
		id,
	)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return c, nil
}

// ExistsByID reports whether a category with the given id exists.
func (s *CategoryStore) ExistsByID(id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM category WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category exists by id: %w", err)
	}
	return exists, nil
}

// ExistsByName reports whether a category with the exact name exists.
// The match is case-sensitive.
func (s *CategoryStore) ExistsByName(name string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM category WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category exists by name: %w", err)
	}
	return exists, nil
}

// ExistsByNameExcept reports whether a category other than excludeID
// already uses the name. Used by update so a row can keep its own name.
func (s *CategoryStore) ExistsByNameExcept(name string, excludeID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM category WHERE name = $1 AND id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category exists by name: %w", err)
	}
	return exists, nil
}
