package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/infrastructure/models"
)

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	m := &models.Order{
		ProductID:        order.ProductID,
		BuyerID:          order.BuyerID,
		SellerID:         order.SellerID,
		BuyerLocationID:  order.BuyerLocationID,
		SellerLocationID: order.SellerLocationID,
		Status:           string(order.Status),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	order.ID = m.ID
	order.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*entities.Order, error) {
	var m models.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toOrderEntity(&m), nil
}

// ListByUser lists orders where the user is buyer or seller, newest first
func (r *OrderRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Order, error) {
	var orderModels []models.Order
	err := r.db.WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderEntity(&orderModels[i]))
	}
	return orders, nil
}

func toOrderEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:               m.ID,
		ProductID:        m.ProductID,
		BuyerID:          m.BuyerID,
		SellerID:         m.SellerID,
		BuyerLocationID:  m.BuyerLocationID,
		SellerLocationID: m.SellerLocationID,
		Status:           entities.OrderStatus(m.Status),
		CreatedAt:        m.CreatedAt,
	}
}
