package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/infrastructure/models"
)

// CategoryRepository implements category operations
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List lists all categories, name ascending
func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var categoryModels []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(categoryModels))
	for i := range categoryModels {
		m := categoryModels[i]
		categories = append(categories, &entities.Category{
			ID:   m.ID,
			Name: m.Name,
			Slug: m.Slug,
		})
	}
	return categories, nil
}

// GetBySlug gets a category by its slug
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var m models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Category{ID: m.ID, Name: m.Name, Slug: m.Slug}, nil
}
