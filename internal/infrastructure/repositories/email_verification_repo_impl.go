package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/infrastructure/models"
)

// EmailVerificationRepository implements OTP challenge operations
type EmailVerificationRepository struct {
	db *gorm.DB
}

// NewEmailVerificationRepository creates a new email verification repository
func NewEmailVerificationRepository(db *gorm.DB) *EmailVerificationRepository {
	return &EmailVerificationRepository{db: db}
}

// Create creates a new challenge
func (r *EmailVerificationRepository) Create(ctx context.Context, verification *entities.EmailVerification) error {
	m := &models.EmailVerification{
		UserID:    verification.UserID,
		Code:      verification.Code,
		ExpiresAt: verification.ExpiresAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	verification.ID = m.ID
	verification.CreatedAt = m.CreatedAt
	return nil
}

// FindLatestMatching returns the newest challenge whose code matches
// exactly. A resend invalidates the intent to use older codes, so ties on
// the code break toward the most recent row.
func (r *EmailVerificationRepository) FindLatestMatching(ctx context.Context, userID uint, code string) (*entities.EmailVerification, error) {
	var m models.EmailVerification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ?", userID, code).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.EmailVerification{
		ID:        m.ID,
		UserID:    m.UserID,
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

// DeleteAllForUser removes every outstanding challenge for the account
func (r *EmailVerificationRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.EmailVerification{}).Error
}
