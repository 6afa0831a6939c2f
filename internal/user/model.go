// Package user provides the user domain model and data access.
package user

import "time"

// User represents a registered account. PasswordHash holds the bcrypt hash of
// the password; plaintext is never stored and the hash never serializes.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Public is the subset of user fields safe to embed in other payloads,
// such as a place's owner block.
type Public struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Public returns the user's public fields.
func (u *User) Public() Public {
	return Public{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// Patch is a partial update. Only non-nil fields are applied; unknown fields
// cannot exist by construction.
type Patch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
}

// apply merges the patch into u, leaving absent fields untouched.
func (p Patch) apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
}

// IsZero reports whether the patch carries no fields.
func (p Patch) IsZero() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.PasswordHash == nil
}
