package repositories

import (
	"context"

	"handshake.backend/internal/domain/entities"
)

// UserRepository defines account data operations
type UserRepository interface {
	// Create persists a new account. A duplicate email fails with
	// ErrAlreadyExists, enforced by the storage unique constraint so the
	// second of two racing registrations always loses.
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// MarkEmailVerified flips the verified flag. Idempotent.
	MarkEmailVerified(ctx context.Context, id uint) error
}

// EmailVerificationRepository defines OTP challenge operations
type EmailVerificationRepository interface {
	Create(ctx context.Context, verification *entities.EmailVerification) error
	// FindLatestMatching returns the newest challenge with the given code,
	// so codes superseded by a resend never win.
	FindLatestMatching(ctx context.Context, userID uint, code string) (*entities.EmailVerification, error)
	DeleteAllForUser(ctx context.Context, userID uint) error
}
