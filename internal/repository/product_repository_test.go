package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Create(t *testing.T) {
	repo := NewSQLProductRepository(newTestDB(t))
	ctx := context.Background()

	p, err := repo.Create(ctx, "Widget", decimal.RequireFromString("25.50"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "Widget", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("25.50")))

	// Identifiers are unique and assigned by the store
	p2, err := repo.Create(ctx, "Gadget", decimal.RequireFromString("9.99"))
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, p2.ID)
}

func TestProductRepository_Create_AcceptsAnyValue(t *testing.T) {
	repo := NewSQLProductRepository(newTestDB(t))
	ctx := context.Background()

	// Empty names and non-positive prices are stored as-is
	p, err := repo.Create(ctx, "", decimal.RequireFromString("-5.00"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("-5.00")))
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := NewSQLProductRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "Widget", decimal.RequireFromString("25.50"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Widget", got.Name)
	assert.True(t, got.Price.Equal(created.Price))
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	repo := NewSQLProductRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductRepository_GetAll(t *testing.T) {
	repo := NewSQLProductRepository(newTestDB(t))
	ctx := context.Background()

	// Empty store yields an empty slice, not an error
	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = repo.Create(ctx, "A", decimal.RequireFromString("1.00"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, "B", decimal.RequireFromString("2.00"))
	require.NoError(t, err)

	products, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductRepository_FindAllByIDs(t *testing.T) {
	repo := NewSQLProductRepository(newTestDB(t))
	ctx := context.Background()

	a, err := repo.Create(ctx, "A", decimal.RequireFromString("1.00"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, "B", decimal.RequireFromString("2.00"))
	require.NoError(t, err)

	// Missing ids are silently omitted; callers diff against the request
	found, err := repo.FindAllByIDs(ctx, []int64{a.ID, b.ID, 99999})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, a.ID, found[0].ID)
	assert.Equal(t, b.ID, found[1].ID)
}

func TestProductRepository_FindAllByIDs_Empty(t *testing.T) {
	repo := NewSQLProductRepository(newTestDB(t))

	found, err := repo.FindAllByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}
