package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/interfaces/http/middleware"
	"handshake.backend/internal/interfaces/http/response"
	"handshake.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "registration successful, check your email for the verification code",
		"user":    user,
	})
}

// VerifyEmail handles OTP submission
// POST /api/v1/auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var input entities.VerifyEmailInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.VerifyEmail(c.Request.Context(), &input); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("no account with that email"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "email verified successfully",
	})
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// ResendOTP issues a fresh verification code
// POST /api/v1/auth/resend-otp
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var input entities.ResendOTPInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ResendOTP(c.Request.Context(), input.Email); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("no account with that email"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "verification code sent",
	})
}

// GetMe returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}
