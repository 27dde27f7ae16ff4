package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/commercekit/orders-api/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, name string, price decimal.Decimal) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	// FindAllByIDs returns the subset of the requested ids that exist.
	// Missing ids are omitted, not errored; callers diff against the
	// request to detect misses.
	FindAllByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
}

// SQLProductRepository implements ProductRepository over database/sql
type SQLProductRepository struct {
	db *sql.DB
}

// NewSQLProductRepository creates a new SQL-backed product repository
func NewSQLProductRepository(db *sql.DB) *SQLProductRepository {
	return &SQLProductRepository{db: db}
}

// Create persists a new product and returns it with its assigned ID
func (r *SQLProductRepository) Create(ctx context.Context, name string, price decimal.Decimal) (*models.Product, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, price) VALUES (?, ?)`, name, price)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("product id: %w", err)
	}

	return &models.Product{ID: id, Name: name, Price: price}, nil
}

// GetByID returns a product by its ID
func (r *SQLProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product %d: %w", id, err)
	}
	return &p, nil
}

// GetAll returns all products
func (r *SQLProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindAllByIDs batch-fetches the products whose ids exist
func (r *SQLProductRepository) FindAllByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price FROM products WHERE id IN (`+placeholders+`) ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query products by ids: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
