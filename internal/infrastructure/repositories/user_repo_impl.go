package repositories

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/infrastructure/models"
)

const pgUniqueViolation = "23505"

// isDuplicateKey reports whether the error is a unique-constraint violation.
// The gorm drivers translate these when TranslateError is enabled; the pq
// code covers raw postgres errors that bypass the translator.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

// UserRepository implements account data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new account. The unique index on email resolves the race
// between two concurrent registrations: the second insert fails here with
// ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		Name:          user.Name,
		EmailVerified: user.EmailVerified,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets an account by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByEmail gets an account by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// MarkEmailVerified flips the verified flag. Updating an already-verified
// row still reports one affected row, so the call stays idempotent; zero
// rows means the account does not exist.
func (r *UserRepository) MarkEmailVerified(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("email_verified", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		PasswordHash:  m.PasswordHash,
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
	}
}
