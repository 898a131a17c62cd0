package repositories

import (
	"context"

	"handshake.backend/internal/domain/entities"
)

// ProductRepository defines product listing operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uint) (*entities.Product, error)
	List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository defines category operations
type CategoryRepository interface {
	List(ctx context.Context) ([]*entities.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Category, error)
}
