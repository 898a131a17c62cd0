package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
)

func TestOrderRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &entities.Order{
		ProductID:        1,
		BuyerID:          10,
		SellerID:         20,
		BuyerLocationID:  1,
		SellerLocationID: 2,
		Status:           entities.OrderStatusPending,
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.NotZero(t, order.ID)

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPending, got.Status)
	assert.True(t, got.Participant(10))
	assert.True(t, got.Participant(20))
	assert.False(t, got.Participant(30))

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderRepository_ListByUser(t *testing.T) {
	db := newTestDB(t)
	createOrderTable(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Order{
		ProductID: 1, BuyerID: 10, SellerID: 20, BuyerLocationID: 1, SellerLocationID: 2,
		Status: entities.OrderStatusPending,
	}))
	require.NoError(t, repo.Create(ctx, &entities.Order{
		ProductID: 2, BuyerID: 30, SellerID: 10, BuyerLocationID: 3, SellerLocationID: 4,
		Status: entities.OrderStatusPending,
	}))
	require.NoError(t, repo.Create(ctx, &entities.Order{
		ProductID: 3, BuyerID: 30, SellerID: 40, BuyerLocationID: 5, SellerLocationID: 6,
		Status: entities.OrderStatusPending,
	}))

	// User 10 appears once as buyer and once as seller
	orders, err := repo.ListByUser(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = repo.ListByUser(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestLocationRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createLocationTable(t, db)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	loc := &entities.Location{
		UserID:    10,
		Latitude:  -6.2088,
		Longitude: 106.8456,
		Address:   "Jakarta",
	}
	require.NoError(t, repo.Create(ctx, loc))
	assert.NotZero(t, loc.ID)

	byID, err := repo.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", byID.Address)

	byUser, err := repo.GetByUserID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, loc.ID, byUser.ID)

	_, err = repo.GetByUserID(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestLocationRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	createLocationTable(t, db)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	first := &entities.Location{UserID: 10, Latitude: -6.2, Longitude: 106.8, Address: "Jakarta"}
	require.NoError(t, repo.Upsert(ctx, first))
	assert.NotZero(t, first.ID)

	second := &entities.Location{UserID: 10, Latitude: -6.9, Longitude: 107.6, Address: "Bandung"}
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.GetByUserID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Bandung", got.Address)
	assert.InDelta(t, -6.9, got.Latitude, 1e-9)
}
