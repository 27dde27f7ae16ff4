package service

import (
	"context"
	"testing"

	"github.com/commercekit/orders-api/internal/models"
	"github.com/commercekit/orders-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) *ProductService {
	t.Helper()

	db, err := repository.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repository.Migrate(context.Background(), db))

	return NewProductService(repository.NewSQLProductRepository(db))
}

func TestProductService_CreateProduct(t *testing.T) {
	svc := newProductService(t)

	p, err := svc.CreateProduct(context.Background(), models.ProductRequest{
		Name:  "Widget",
		Price: decimal.RequireFromString("25.50"),
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Widget", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("25.50")))
}

func TestProductService_CreateProduct_NoValidation(t *testing.T) {
	svc := newProductService(t)

	// Empty name and zero price pass through untouched
	p, err := svc.CreateProduct(context.Background(), models.ProductRequest{
		Name:  "",
		Price: decimal.Zero,
	})
	require.NoError(t, err)

	got, err := svc.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Name)
	assert.True(t, got.Price.IsZero())
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.GetProduct(context.Background(), 99999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductService_ListProducts(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = svc.CreateProduct(ctx, models.ProductRequest{Name: "A", Price: decimal.RequireFromString("1.00")})
	require.NoError(t, err)

	products, err = svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
