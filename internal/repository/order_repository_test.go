package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder(now time.Time) *model.Order {
	image := "assets/mug.png"
	return &model.Order{
		OrderID: "ORD-1700000000000-abcd1234",
		Items: []model.OrderItem{
			{
				CartID:           "c1",
				ProductReference: model.ProductRef{ID: "p1", Name: "Mug"},
				ProductDetails:   model.Product{ID: "p1", Name: "Mug", Price: 10.00, Image: &image},
				Quantity:         intPtr(3),
				ItemTotal:        30.00,
				Date:             now,
			},
			{
				CartID:           "c2",
				ProductReference: model.ProductRef{ID: "p2", Name: "Plate"},
				ProductDetails:   model.Product{ID: "p2", Name: "Plate", Price: 20.00},
				ItemTotal:        20.00,
				Date:             now,
			},
		},
		TotalAmount:    50.00,
		TotalItemsCart: 2,
		TotalItems:     4,
		OrderDate:      now,
	}
}

func TestOrderRepository_CreateAndGetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	order := sampleOrder(now)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.CreateOrder(ctx, tx, order))
	require.NoError(t, repo.CreateOrderItems(ctx, tx, order.OrderID, order.Items))
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetByID(ctx, order.OrderID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, order.OrderID, got.OrderID)
	assert.Equal(t, 50.00, got.TotalAmount)
	assert.Equal(t, 2, got.TotalItemsCart)
	assert.Equal(t, 4, got.TotalItems)
	require.Len(t, got.Items, 2)

	assert.Equal(t, "c1", got.Items[0].CartID)
	assert.Equal(t, model.ProductRef{ID: "p1", Name: "Mug"}, got.Items[0].ProductReference)
	assert.Equal(t, 10.00, got.Items[0].ProductDetails.Price)
	require.NotNil(t, got.Items[0].Quantity)
	assert.Equal(t, 3, *got.Items[0].Quantity)
	assert.Equal(t, 30.00, got.Items[0].ItemTotal)

	assert.Nil(t, got.Items[1].Quantity)
	assert.Equal(t, 20.00, got.Items[1].ItemTotal)
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	got, err := repo.GetByID(context.Background(), "ORD-0-missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderRepository_CreateOrderItems_Empty(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	order := sampleOrder(now)
	order.Items = nil
	order.TotalAmount = 0
	order.TotalItems = 0
	order.TotalItemsCart = 0

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.CreateOrder(ctx, tx, order))
	require.NoError(t, repo.CreateOrderItems(ctx, tx, order.OrderID, nil))
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetByID(ctx, order.OrderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Items)
	assert.Zero(t, got.TotalAmount)
}

func TestOrderRepository_RollbackLeavesNoOrder(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()
	order := sampleOrder(time.Now())

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.CreateOrder(ctx, tx, order))
	require.NoError(t, tx.Rollback(ctx))

	got, err := repo.GetByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
