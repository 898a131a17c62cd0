package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/infrastructure/models"
)

const (
	defaultProductLimit = 20
	maxProductLimit     = 100
)

// ProductRepository implements product listing operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new listing
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := &models.Product{
		SellerID:    product.SellerID,
		CategoryID:  product.CategoryID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL.Ptr(),
		Status:      string(product.Status),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a listing with its category name joined in
func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*entities.Product, error) {
	var row productRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return row.toEntity(), nil
}

// List lists active products, newest first. Limits are clamped to 100.
func (r *ProductRepository) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultProductLimit
	}
	if limit > maxProductLimit {
		limit = maxProductLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := r.db.WithContext(ctx).
		Table("products").
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.status = ?", string(entities.ProductStatusActive))

	if filter.CategoryID != 0 {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.CategorySlug != "" {
		query = query.Where("categories.slug = ?", filter.CategorySlug)
	}

	var rows []productRow
	err := query.
		Order("products.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(rows))
	for i := range rows {
		products = append(products, rows[i].toEntity())
	}
	return products, nil
}

// Update updates the mutable listing fields
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"title":       product.Title,
		"description": product.Description,
		"price":       product.Price,
		"image_url":   product.ImageURL.Ptr(),
		"status":      string(product.Status),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a listing
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

type productRow struct {
	models.Product
	CategoryName string
}

func (row *productRow) toEntity() *entities.Product {
	return &entities.Product{
		ID:           row.ID,
		SellerID:     row.SellerID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Title:        row.Title,
		Description:  row.Description,
		Price:        row.Price,
		ImageURL:     null.StringFromPtr(row.ImageURL),
		Status:       entities.ProductStatus(row.Status),
		CreatedAt:    row.CreatedAt,
	}
}
