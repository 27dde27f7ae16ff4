package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/commercekit/orders-api/internal/models"
	"github.com/commercekit/orders-api/internal/repository"
	"github.com/shopspring/decimal"
)

// ProductsNotFoundError is returned when an order references product ids
// that do not exist. It enumerates every missing id, not just the first.
type ProductsNotFoundError struct {
	IDs []int64
}

func (e *ProductsNotFoundError) Error() string {
	return fmt.Sprintf("Invalid Order: Product(s) not found: %v", e.IDs)
}

// OrderService handles order business logic
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// CreateOrder validates the requested product ids, computes the snapshot
// total and persists the order. All-or-nothing: if any id is missing the
// order is rejected before any price computation or persistence.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	// Duplicates in the request collapse to a single reference
	uniqueIDs := dedupe(req.ProductIDs)

	products, err := s.productRepo.FindAllByIDs(ctx, uniqueIDs)
	if err != nil {
		return nil, err
	}

	// Every requested id must resolve to an existing product
	if len(products) != len(uniqueIDs) {
		foundIDs := make(map[int64]bool, len(products))
		for _, p := range products {
			foundIDs[p.ID] = true
		}

		missing := make([]int64, 0, len(uniqueIDs)-len(products))
		for _, id := range uniqueIDs {
			if !foundIDs[id] {
				missing = append(missing, id)
			}
		}
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

		return nil, &ProductsNotFoundError{IDs: missing}
	}

	// Exact decimal sum of then-current prices; no rounding
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}

	return s.orderRepo.Create(ctx, total, products)
}

// GetOrder returns an order by ID with its products resolved
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ListOrders returns all orders; an empty store yields an empty slice
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}
