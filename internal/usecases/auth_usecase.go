package usecases

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/domain/repositories"
	"handshake.backend/internal/infrastructure/email"
	"handshake.backend/pkg/crypto"
	"handshake.backend/pkg/jwt"
	"handshake.backend/pkg/logger"
)

// ResendLimiter throttles OTP resend requests
type ResendLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
}

// AuthUsecase sequences registration, OTP verification, login and token
// minting.
type AuthUsecase struct {
	userRepo      repositories.UserRepository
	verifRepo     repositories.EmailVerificationRepository
	tokenService  *jwt.TokenService
	sender        email.Sender
	resendLimiter ResendLimiter
	otpExpiry     time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	verifRepo repositories.EmailVerificationRepository,
	tokenService *jwt.TokenService,
	sender email.Sender,
	resendLimiter ResendLimiter,
	otpExpiry time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		verifRepo:     verifRepo,
		tokenService:  tokenService,
		sender:        sender,
		resendLimiter: resendLimiter,
		otpExpiry:     otpExpiry,
	}
}

// Register creates an unverified account and dispatches the first OTP.
// A failed email dispatch leaves the account pending-resend: the account and
// challenge stay persisted, the client recovers via ResendOTP.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
	}

	// The pre-check above can race with a concurrent registration; the
	// unique constraint decides the winner and the repo reports
	// ErrAlreadyExists for the loser.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := u.issueChallenge(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// VerifyEmail evaluates a submitted code against the account's newest
// challenge. On success the account becomes verified and every outstanding
// challenge is deleted so the code can never be replayed.
func (u *AuthUsecase) VerifyEmail(ctx context.Context, input *entities.VerifyEmailInput) error {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return domainerrors.ErrAlreadyVerified
	}

	verification, err := u.verifRepo.FindLatestMatching(ctx, user.ID, input.Code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidCode
		}
		return err
	}

	if verification.Expired(time.Now()) {
		return domainerrors.ErrCodeExpired
	}

	if err := u.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
		return err
	}

	return u.verifRepo.DeleteAllForUser(ctx, user.ID)
}

// Login checks the password and mints a bearer token. An unknown email and a
// wrong password fail identically so status codes cannot enumerate accounts;
// an unverified account is rejected before the token is minted.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.EmailVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: user}, nil
}

// ResendOTP invalidates all outstanding challenges and issues a fresh one.
// Only legal while the account is unverified.
func (u *AuthUsecase) ResendOTP(ctx context.Context, emailAddr string) error {
	user, err := u.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return domainerrors.ErrAlreadyVerified
	}

	allowed, err := u.resendLimiter.Allow(ctx, emailAddr)
	if err != nil {
		return err
	}
	if !allowed {
		return domainerrors.ErrTooManyRequests
	}

	// Old codes must be gone before the new one lands so a stale retry
	// cannot win.
	if err := u.verifRepo.DeleteAllForUser(ctx, user.ID); err != nil {
		return err
	}

	return u.issueChallenge(ctx, user)
}

// GetUserByID gets an account by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *AuthUsecase) issueChallenge(ctx context.Context, user *entities.User) error {
	code, err := crypto.GenerateOTP()
	if err != nil {
		return err
	}

	verification := &entities.EmailVerification{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(u.otpExpiry),
	}
	if err := u.verifRepo.Create(ctx, verification); err != nil {
		return err
	}

	if err := u.sender.SendVerification(ctx, user.Email, user.Name, code); err != nil {
		logger.Warn(ctx, "verification email dispatch failed, account left pending resend",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
	}
	return nil
}
