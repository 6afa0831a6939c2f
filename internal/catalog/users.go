package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/auth"
	"github.com/kwalters/stay-catalog/internal/user"
)

const maxNameLength = 50

// CreateUserInput carries the fields for a new account.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// UpdateUserInput is a partial update. Password, when present, is plaintext
// and gets hashed before storage.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.NewValidation(field + " is required")
	}
	if len(name) > maxNameLength {
		return apperror.NewValidation(field + " must be at most 50 characters")
	}
	return nil
}

// CreateUser registers a new account. Only admins may create users. The
// plaintext password is hashed before it reaches storage.
func (s *Service) CreateUser(claims auth.Claims, in CreateUserInput) (*user.User, error) {
	if !allowed(claims, actionCreateUser, "") {
		return nil, apperror.NewForbidden("admin privileges required")
	}
	if err := validateName("first_name", in.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last_name", in.LastName); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, apperror.NewValidation("email is required")
	}
	if in.Password == "" {
		return nil, apperror.NewValidation("password is required")
	}

	existing, err := s.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("email already registered")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.NewInternal("hashing password", err)
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		IsAdmin:      in.IsAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUser applies a partial update to an account. Non-admins may only
// modify their own profile fields; changing email or password is an admin
// operation. Admins may modify anyone, with email uniqueness re-checked.
func (s *Service) UpdateUser(claims auth.Claims, id string, in UpdateUserInput) (*user.User, error) {
	if in.FirstName != nil {
		if err := validateName("first_name", *in.FirstName); err != nil {
			return nil, err
		}
	}
	if in.LastName != nil {
		if err := validateName("last_name", *in.LastName); err != nil {
			return nil, err
		}
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		return nil, apperror.NewValidation("email is required")
	}
	if in.Password != nil && *in.Password == "" {
		return nil, apperror.NewValidation("password is required")
	}

	target, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NewNotFound("user not found")
	}
	if !allowed(claims, actionUpdateUser, target.ID) {
		return nil, apperror.NewForbidden("cannot modify another user")
	}
	if !claims.IsAdmin && (in.Email != nil || in.Password != nil) {
		return nil, apperror.NewForbidden("only admins can change email or password")
	}

	if in.Email != nil && *in.Email != target.Email {
		other, err := s.users.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, apperror.NewConflict("email already registered")
		}
	}

	patch := user.Patch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, apperror.NewInternal("hashing password", err)
		}
		patch.PasswordHash = &hash
	}

	if err := s.users.Update(id, patch); err != nil {
		return nil, err
	}
	return s.GetUser(id)
}

// GetUser returns the user with the given id.
func (s *Service) GetUser(id string) (*user.User, error) {
	u, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NewNotFound("user not found")
	}
	return u, nil
}

// GetUserByEmail returns the user registered under the given email.
func (s *Service) GetUserByEmail(email string) (*user.User, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NewNotFound("user not found")
	}
	return u, nil
}

// ListUsers returns all registered users.
func (s *Service) ListUsers() ([]*user.User, error) {
	return s.users.List()
}
