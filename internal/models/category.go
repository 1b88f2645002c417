// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category represents a row in the category table.
type Category struct {
	ID          int64
	Name        string
	CreatedDate time.Time
	UpdatedDate time.Time
}

// CategoryResponse is the wire shape of a category. Timestamps are
// localized display strings, not RFC 3339.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CreatedDate string `json:"created_date"`
	UpdatedDate string `json:"updated_date"`
}

// Response converts a Category to its wire representation.
func (c *Category) Response() CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		CreatedDate: FormatTimestamp(c.CreatedDate),
		UpdatedDate: FormatTimestamp(c.UpdatedDate),
	}
}

// CategoryRef is the embedded {id, name} object on product responses.
// It is nil (rendered as JSON null) when the joined category is missing.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
