package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/infrastructure/models"
)

// LocationRepository implements stored location operations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location row
func (r *LocationRepository) Create(ctx context.Context, location *entities.Location) error {
	m := &models.Location{
		UserID:    location.UserID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Address:   location.Address,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	location.ID = m.ID
	return nil
}

// GetByID gets a location by ID
func (r *LocationRepository) GetByID(ctx context.Context, id uint) (*entities.Location, error) {
	var m models.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toLocationEntity(&m), nil
}

// GetByUserID gets the user's stored location
func (r *LocationRepository) GetByUserID(ctx context.Context, userID uint) (*entities.Location, error) {
	var m models.Location
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toLocationEntity(&m), nil
}

// Upsert updates the user's stored location, inserting when no row exists
func (r *LocationRepository) Upsert(ctx context.Context, location *entities.Location) error {
	result := r.db.WithContext(ctx).
		Model(&models.Location{}).
		Where("user_id = ?", location.UserID).
		Updates(map[string]interface{}{
			"latitude":  location.Latitude,
			"longitude": location.Longitude,
			"address":   location.Address,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		var m models.Location
		if err := r.db.WithContext(ctx).Where("user_id = ?", location.UserID).First(&m).Error; err != nil {
			return err
		}
		location.ID = m.ID
		return nil
	}

	return r.Create(ctx, location)
}

func toLocationEntity(m *models.Location) *entities.Location {
	return &entities.Location{
		ID:        m.ID,
		UserID:    m.UserID,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Address:   m.Address,
	}
}
