package repositories

import (
	"context"

	"handshake.backend/internal/domain/entities"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uint) (*entities.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*entities.Order, error)
}

// LocationRepository defines stored location operations
type LocationRepository interface {
	Create(ctx context.Context, location *entities.Location) error
	GetByID(ctx context.Context, id uint) (*entities.Location, error)
	GetByUserID(ctx context.Context, userID uint) (*entities.Location, error)
	// Upsert replaces the user's stored location, inserting when absent
	Upsert(ctx context.Context, location *entities.Location) error
}
