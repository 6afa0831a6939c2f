package user

import (
	"sync"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// MemoryRepository is an in-memory user store for tests and single-node mode.
// All operations are atomic with respect to each other; stored values are
// copied on the way in and out so callers never share state with the map.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepository creates an empty in-memory user repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

// Insert persists the user. The email uniqueness backstop a relational store
// gets from its unique index is enforced here under the same lock.
func (r *MemoryRepository) Insert(u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperror.NewConflict("email already registered")
		}
	}
	r.users[u.ID] = *u
	return nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *MemoryRepository) GetByID(id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *MemoryRepository) GetByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

// List returns all users. Order is unspecified.
func (r *MemoryRepository) List() ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		copied := u
		users = append(users, &copied)
	}
	return users, nil
}

// Update applies the patch to the stored user and refreshes updated_at.
func (r *MemoryRepository) Update(id string, patch Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return apperror.NewNotFound("user not found")
	}

	if patch.Email != nil && *patch.Email != u.Email {
		for _, existing := range r.users {
			if existing.Email == *patch.Email {
				return apperror.NewConflict("email already registered")
			}
		}
	}

	patch.apply(&u)
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return nil
}
