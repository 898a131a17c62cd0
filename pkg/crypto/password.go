package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	otpModulus = 1000000
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomInt                  = rand.Int
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateOTP generates a 6-digit zero-padded one-time passcode drawn
// uniformly from 000000-999999.
func GenerateOTP() (string, error) {
	n, err := randomInt(rand.Reader, big.NewInt(otpModulus))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
