package auth

import (
	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/user"
)

// UserFinder is the slice of the user repository Login needs.
type UserFinder interface {
	GetByEmail(email string) (*user.User, error)
}

// Service authenticates users and issues tokens.
type Service struct {
	users  UserFinder
	hasher *PasswordHasher
	tokens *TokenManager
}

// NewService creates an authentication service.
func NewService(users UserFinder, hasher *PasswordHasher, tokens *TokenManager) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens}
}

// Login verifies credentials and returns a signed access token. An unknown
// email and a wrong password produce the same error so callers cannot probe
// which accounts exist.
func (s *Service) Login(email, password string) (string, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil || !s.hasher.Verify(u.PasswordHash, password) {
		return "", apperror.NewAuth("invalid credentials", nil)
	}
	return s.tokens.Issue(u.ID, u.IsAdmin)
}
