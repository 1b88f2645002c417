// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"

	"katalog/internal/database"
	"katalog/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDSN returns the PostgreSQL connection string for testing.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "katalog")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "katalog")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// uniqueName returns a fixture name that cannot collide across runs.
func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// createTestCategory inserts a category with a unique name and registers
// cleanup for it and any products still referencing it.
func createTestCategory(t *testing.T, db *sql.DB) *models.Category {
	t.Helper()

	c, err := NewCategoryStore(db).Create(uniqueName("test-category"))
	if err != nil {
		t.Fatalf("create test category: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM product WHERE category_id = $1", c.ID)
		db.Exec("DELETE FROM category WHERE id = $1", c.ID)
	})
	return c
}

// createTestProduct inserts a product under the given category with a
// unique name. Cleanup rides on the category cleanup.
func createTestProduct(t *testing.T, db *sql.DB, categoryID int64) *models.Product {
	t.Helper()

	p, err := NewProductStore(db).Create(&models.Product{
		Name:       uniqueName("test-product"),
		Price:      decimal.RequireFromString("10000"),
		Currency:   models.DefaultCurrency,
		Quantity:   5,
		Active:     true,
		CategoryID: categoryID,
	})
	if err != nil {
		t.Fatalf("create test product: %v", err)
	}
	return p
}
