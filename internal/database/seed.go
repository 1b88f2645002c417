package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with a small sample catalog for
// development. It is a no-op when categories already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM category").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	seedProducts := map[string][]struct {
		name     string
		price    string
		quantity int
	}{
		"Drinks": {
			{"Cola", "10000", 24},
			{"Mineral Water", "4000", 48},
		},
		"Snacks": {
			{"Banana Chips", "15000", 12},
		},
	}

	for category, products := range seedProducts {
		var categoryID int64
		err := db.QueryRow(`
			INSERT INTO category (name) VALUES ($1)
			RETURNING id
		`, category).Scan(&categoryID)
		if err != nil {
			return fmt.Errorf("seed insert category %s: %w", category, err)
		}

		for _, p := range products {
			_, err := db.Exec(`
				INSERT INTO product (name, price, quantity, category_id)
				VALUES ($1, $2, $3, $4)
			`, p.name, p.price, p.quantity, categoryID)
			if err != nil {
				return fmt.Errorf("seed insert product %s: %w", p.name, err)
			}
		}
	}

	slog.Info("database seeded with sample catalog")
	return nil
}
