package entities

import "time"

// User represents a marketplace account
type User struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"-"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// RegisterInput represents input for registering a new account
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
}

// VerifyEmailInput represents input for submitting a verification code
type VerifyEmailInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// LoginInput represents input for logging in
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResendOTPInput represents input for requesting a fresh verification code
type ResendOTPInput struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
