package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ynvbites/internal/domain"
	"ynvbites/internal/errors"
	"ynvbites/internal/testutil"
)

func newOrder(id string) domain.Order {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	return domain.Order{
		ID:          id,
		CustomerID:  "cus-1",
		Items:       []domain.OrderItem{{ProductID: 2, Quantity: 3, Price: 25000}},
		TotalAmount: 75000,
		Status:      domain.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestOrderRepository_Insert_And_FindByID(t *testing.T) {
	repo := NewOrderRepository(testutil.NewStore(t))

	order := newOrder("ord-1")
	require.NoError(t, repo.Insert(context.Background(), order))

	found, err := repo.FindByID(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, order, *found)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	repo := NewOrderRepository(testutil.NewStore(t))

	found, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, found)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "Order not found", nfe.Message)
}

func TestOrderRepository_Update_WhitelistedFields(t *testing.T) {
	repo := NewOrderRepository(testutil.NewStore(t))

	order := newOrder("ord-1")
	require.NoError(t, repo.Insert(context.Background(), order))

	status := domain.OrderStatusCompleted
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	updated, err := repo.Update(context.Background(), "ord-1", domain.OrderPatch{Status: &status}, now)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)
	assert.Equal(t, order.CustomerID, updated.CustomerID)
	assert.Equal(t, order.TotalAmount, updated.TotalAmount)
	assert.Equal(t, order.CreatedAt, updated.CreatedAt)
	assert.Equal(t, now, updated.UpdatedAt)

	found, err := repo.FindByID(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, *updated, *found)
}

func TestOrderRepository_List_InsertionOrder(t *testing.T) {
	repo := NewOrderRepository(testutil.NewStore(t))

	require.NoError(t, repo.Insert(context.Background(), newOrder("ord-1")))
	require.NoError(t, repo.Insert(context.Background(), newOrder("ord-2")))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord-1", orders[0].ID)
	assert.Equal(t, "ord-2", orders[1].ID)
}
