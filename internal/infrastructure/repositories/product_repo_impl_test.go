package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
)

func TestProductRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createCategoryTable(t, db)
	createProductTable(t, db)
	mustExec(t, db, `INSERT INTO categories (name, slug) VALUES ('Electronics', 'electronics')`)

	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &entities.Product{
		SellerID:    1,
		CategoryID:  1,
		Title:       "Used Laptop",
		Description: "Works fine",
		Price:       250,
		ImageURL:    null.StringFrom("https://img.example/laptop.jpg"),
		Status:      entities.ProductStatusActive,
	}
	require.NoError(t, repo.Create(ctx, product))
	assert.NotZero(t, product.ID)

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Used Laptop", got.Title)
	assert.Equal(t, "Electronics", got.CategoryName)
	assert.Equal(t, "https://img.example/laptop.jpg", got.ImageURL.String)
}

func TestProductRepository_ListFiltersInactive(t *testing.T) {
	db := newTestDB(t)
	createCategoryTable(t, db)
	createProductTable(t, db)
	mustExec(t, db, `INSERT INTO categories (name, slug) VALUES ('Electronics', 'electronics')`)
	mustExec(t, db, `INSERT INTO categories (name, slug) VALUES ('Books', 'books')`)

	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Product{
		SellerID: 1, CategoryID: 1, Title: "Laptop", Description: "d", Price: 250,
		Status: entities.ProductStatusActive,
	}))
	require.NoError(t, repo.Create(ctx, &entities.Product{
		SellerID: 1, CategoryID: 1, Title: "Sold Phone", Description: "d", Price: 100,
		Status: entities.ProductStatusSold,
	}))
	require.NoError(t, repo.Create(ctx, &entities.Product{
		SellerID: 2, CategoryID: 2, Title: "Novel", Description: "d", Price: 5,
		Status: entities.ProductStatusActive,
	}))

	all, err := repo.List(ctx, entities.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, p := range all {
		assert.Equal(t, entities.ProductStatusActive, p.Status)
	}

	electronics, err := repo.List(ctx, entities.ProductFilter{CategoryID: 1})
	require.NoError(t, err)
	require.Len(t, electronics, 1)
	assert.Equal(t, "Laptop", electronics[0].Title)

	books, err := repo.List(ctx, entities.ProductFilter{CategorySlug: "books"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Novel", books[0].Title)
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	createCategoryTable(t, db)
	createProductTable(t, db)
	mustExec(t, db, `INSERT INTO categories (name, slug) VALUES ('Electronics', 'electronics')`)

	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &entities.Product{
		SellerID: 1, CategoryID: 1, Title: "Laptop", Description: "d", Price: 250,
		Status: entities.ProductStatusActive,
	}
	require.NoError(t, repo.Create(ctx, product))

	product.Price = 200
	product.Status = entities.ProductStatusSold
	require.NoError(t, repo.Update(ctx, product))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(200), got.Price)
	assert.Equal(t, entities.ProductStatusSold, got.Status)

	require.NoError(t, repo.Delete(ctx, product.ID))
	_, err = repo.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, product.ID), domainerrors.ErrNotFound)
}

func TestCategoryRepository(t *testing.T) {
	db := newTestDB(t)
	createCategoryTable(t, db)
	mustExec(t, db, `INSERT INTO categories (name, slug) VALUES ('Electronics', 'electronics')`)
	mustExec(t, db, `INSERT INTO categories (name, slug) VALUES ('Books', 'books')`)

	repo := NewCategoryRepository(db)
	ctx := context.Background()

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Books", categories[0].Name)

	cat, err := repo.GetBySlug(ctx, "electronics")
	require.NoError(t, err)
	assert.Equal(t, "Electronics", cat.Name)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
