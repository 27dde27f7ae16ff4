package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/commercekit/orders-api/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Create persists an order referencing the given products in a
	// single transaction. The creation timestamp is stamped here from
	// the server clock, never caller-supplied.
	Create(ctx context.Context, totalPrice decimal.Decimal, products []models.Product) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}

// SQLOrderRepository implements OrderRepository over database/sql
type SQLOrderRepository struct {
	db *sql.DB
}

// NewSQLOrderRepository creates a new SQL-backed order repository
func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{db: db}
}

// execTx runs fn inside a transaction, rolling back on error
func (r *SQLOrderRepository) execTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// Create inserts the order row and its join rows atomically. The join
// table carries foreign keys to products, so a product disappearing
// between the caller's validation read and this write fails the whole
// transaction instead of leaving a dangling reference.
func (r *SQLOrderRepository) Create(ctx context.Context, totalPrice decimal.Decimal, products []models.Product) (*models.Order, error) {
	var order *models.Order

	err := r.execTx(ctx, func(tx *sql.Tx) error {
		createdAt := time.Now().UTC()

		res, err := tx.ExecContext(ctx,
			`INSERT INTO orders (total_price, created_at) VALUES (?, ?)`,
			totalPrice, createdAt)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		orderID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("order id: %w", err)
		}

		for _, p := range products {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO order_products (order_id, product_id) VALUES (?, ?)`,
				orderID, p.ID); err != nil {
				return fmt.Errorf("insert order product %d: %w", p.ID, err)
			}
		}

		order = &models.Order{
			ID:         orderID,
			TotalPrice: totalPrice,
			CreatedAt:  createdAt,
			Products:   products,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID returns an order with its products eagerly resolved
func (r *SQLOrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRowContext(ctx,
		`SELECT id, total_price, created_at FROM orders WHERE id = ?`, id).
		Scan(&o.ID, &o.TotalPrice, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order %d: %w", id, err)
	}

	products, err := r.productsForOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Products = products

	return &o, nil
}

// GetAll returns all orders with their products resolved. An empty
// store yields an empty slice, not an error.
func (r *SQLOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, total_price, created_at FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.TotalPrice, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	for i := range orders {
		products, err := r.productsForOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Products = products
	}

	return orders, nil
}

func (r *SQLOrderRepository) productsForOrder(ctx context.Context, orderID int64) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.name, p.price
		 FROM products p
		 JOIN order_products op ON op.product_id = p.id
		 WHERE op.order_id = ?
		 ORDER BY p.id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order %d products: %w", orderID, err)
	}
	defer rows.Close()

	return scanProducts(rows)
}
