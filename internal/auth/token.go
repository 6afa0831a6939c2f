// Package auth issues and verifies credentials: bcrypt password hashes and
// HS256 JWT access tokens.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// Claims identifies an authenticated caller. IsAdmin mirrors the user record
// at issue time.
type Claims struct {
	UserID  string
	IsAdmin bool
}

type tokenClaims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses access tokens with a shared HMAC secret.
type TokenManager struct {
	secret   []byte
	duration time.Duration
}

// NewTokenManager creates a token manager. duration bounds token lifetime.
func NewTokenManager(secret string, duration time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), duration: duration}
}

// Issue signs a token for the given user with the configured lifetime.
func (m *TokenManager) Issue(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of a token and returns its claims.
func (m *TokenManager) Parse(tokenString string) (Claims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, apperror.NewAuth("invalid token", err)
	}
	if !token.Valid || claims.Subject == "" {
		return Claims{}, apperror.NewAuth("invalid token", nil)
	}

	return Claims{UserID: claims.Subject, IsAdmin: claims.IsAdmin}, nil
}
