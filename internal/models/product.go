// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a product is created without an
// explicit currency.
const DefaultCurrency = "Rp"

// Product represents a row in the product table. Category is populated
// by joined reads and is nil when the referenced category is missing.
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	Currency    string
	Quantity    int
	Active      bool
	CategoryID  int64
	Category    *CategoryRef
	CreatedDate time.Time
	UpdatedDate time.Time
}

// ProductResponse is the wire shape of a product: the embedded category
// object plus localized timestamps. Price marshals as a decimal string,
// matching what the database hands back for numeric columns.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Quantity    int             `json:"quantity"`
	Active      bool            `json:"active"`
	CategoryID  int64           `json:"category_id"`
	Category    *CategoryRef    `json:"category"`
	CreatedDate string          `json:"created_date"`
	UpdatedDate string          `json:"updated_date"`
}

// Response converts a Product to its wire representation.
func (p *Product) Response() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Quantity:    p.Quantity,
		Active:      p.Active,
		CategoryID:  p.CategoryID,
		Category:    p.Category,
		CreatedDate: FormatTimestamp(p.CreatedDate),
		UpdatedDate: FormatTimestamp(p.UpdatedDate),
	}
}
