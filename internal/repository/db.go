package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schema creates the two entity tables plus the order_products join table.
// "orders" because ORDER is a reserved SQL keyword.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	name  TEXT NOT NULL,
	price TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	total_price TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS order_products (
	order_id   INTEGER NOT NULL REFERENCES orders (id),
	product_id INTEGER NOT NULL REFERENCES products (id),
	PRIMARY KEY (order_id, product_id)
);
`

// Open opens (and creates if necessary) the SQLite database at path.
// Foreign key enforcement is switched on so join rows can never point at
// a product that does not exist.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer; serializing the pool avoids
	// SQLITE_BUSY under concurrent requests and keeps in-memory
	// databases on one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Migrate applies the schema. Idempotent; called once at startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
