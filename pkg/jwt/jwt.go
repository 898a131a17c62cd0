package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed token, bad
// signature and expired claims all look the same to the caller so a probing
// client cannot tell which check rejected it.
var ErrInvalidToken = errors.New("invalid token")

// BearerPrefix is the optional scheme prefix on the Authorization header
const BearerPrefix = "Bearer "

// Claims represents the token claim set shared by all services
type Claims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer tokens. The same symmetric secret
// is injected into the issuing service and into every verifying service, so
// verification never calls back to the issuer.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

var signJWTToken = func(token *jwt.Token, secret []byte) (string, error) {
	return token.SignedString(secret)
}

// NewTokenService creates a new token service
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue mints a signed token for the given account
func (s *TokenService) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signJWTToken(token, s.secret)
}

// Verify validates a raw Authorization header value or bare token and returns
// the claims. The "Bearer " prefix is optional.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	tokenString := strings.TrimPrefix(raw, BearerPrefix)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
