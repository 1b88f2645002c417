// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"katalog/internal/models"
)

// ProductStore manages rows in the product table.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

// productJoinColumns lists product columns plus the joined category pair.
// Queries using it must alias the product rowset as p and the joined
// category as c.
const productJoinColumns = `p.id, p.name, p.description, p.price, p.currency,
	p.quantity, p.active, p.category_id, p.created_date, p.updated_date,
	c.id, c.name`

// scanProduct scans a joined row into a Product struct. The trailing
// category columns are nullable because of the LEFT JOIN.
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var catID sql.NullInt64
	var catName sql.NullString
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Currency,
		&p.Quantity, &p.Active, &p.CategoryID, &p.CreatedDate, &p.UpdatedDate,
		&catID, &catName,
	)
	if err != nil {
		return nil, err
	}
	if catID.Valid {
		p.Category = &models.CategoryRef{ID: catID.Int64, Name: catName.String}
	}
	return &p, nil
}

// List returns all products ordered by id, each with its category joined.
func (s *ProductStore) List() ([]models.Product, error) {
	rows, err := s.db.Query(`
		SELECT ` + productJoinColumns + `
		FROM product p
		LEFT JOIN category c ON c.id = p.category_id
		ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// ListByCategory returns all products referencing the given category.
func (s *ProductStore) ListByCategory(categoryID int64) ([]models.Product, error) {
	rows, err := s.db.Query(`
		SELECT `+productJoinColumns+`
		FROM product p
		LEFT JOIN category c ON c.id = p.category_id
		WHERE p.category_id = $1
		ORDER BY p.id`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// collectProducts drains a joined product rowset.
func collectProducts(rows *sql.Rows) ([]models.Product, error) {
	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a product with its category joined. Returns nil if
// not found.
func (s *ProductStore) FindByID(id int64) (*models.Product, error) {
	row := s.db.QueryRow(`
		SELECT `+productJoinColumns+`
		FROM product p
		LEFT JOIN category c ON c.id = p.category_id
		WHERE p.id = $1`,
		id,
	)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// Create inserts a new product with server-assigned timestamps and
// returns the created row with its category joined.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	row := s.db.QueryRow(`
		WITH p AS (
			INSERT INTO product
				(name, description, price, currency, quantity, active,
				 category_id, created_date, updated_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
			RETURNING *
		)
		SELECT `+productJoinColumns+`
		FROM p
		LEFT JOIN category c ON c.id = p.category_id`,
		p.Name, p.Description, p.Price, p.Currency, p.Quantity, p.Active, p.CategoryID,
	)
	created, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// Update replaces every mutable field of a product and refreshes
// updated_date. Returns nil if no row matched the id.
func (s *ProductStore) Update(id int64, p *models.Product) (*models.Product, error) {
	row := s.db.QueryRow(`
		WITH p AS (
			UPDATE product
			SET name = $1, description = $2, price = $3, currency = $4,
			    quantity = $5, active = $6, category_id = $7,
			    updated_date = now()
			WHERE id = $8
			RETURNING *
		)
		SELECT `+productJoinColumns+`
		FROM p
		LEFT JOIN category c ON c.id = p.category_id`,
		p.Name, p.Description, p.Price, p.Currency, p.Quantity, p.Active, p.CategoryID, id,
	)
	updated, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// Delete removes a product by id. Reports whether a row was removed.
func (s *ProductStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return n > 0, nil
}

// CountByCategory returns how many products reference the given category.
func (s *ProductStore) CountByCategory(categoryID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM product WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// ExistsByNameExcept reports whether a product other than excludeID
// already uses the name. The match is case-sensitive.
func (s *ProductStore) ExistsByNameExcept(name string, excludeID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM product WHERE name = $1 AND id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product exists by name: %w", err)
	}
	return exists, nil
}
