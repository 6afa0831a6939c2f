package user

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/db"
)

// Repository is the storage contract for users. Get methods return (nil, nil)
// when no user matches; absence is a normal outcome, not an error.
type Repository interface {
	Insert(u *User) error
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	List() ([]*User, error)
	Update(id string, patch Patch) error
}

// SQLRepository stores users in SQLite.
type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository creates a SQLite-backed user repository.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

const selectColumns = `id, first_name, last_name, email, password_hash, is_admin, created_at, updated_at`

// Insert persists a fully constructed user. A duplicate email surfaces as a
// Conflict via the unique index, covering the service's check-then-act window.
func (r *SQLRepository) Insert(u *User) error {
	_, err := r.db.Exec(
		`INSERT INTO users (`+selectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return apperror.NewConflict("email already registered")
		}
		return apperror.NewDatabase("inserting user", err)
	}
	return nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *SQLRepository) GetByID(id string) (*User, error) {
	return r.getOne(`SELECT `+selectColumns+` FROM users WHERE id = ?`, id)
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *SQLRepository) GetByEmail(email string) (*User, error) {
	return r.getOne(`SELECT `+selectColumns+` FROM users WHERE email = ?`, email)
}

func (r *SQLRepository) getOne(query string, arg any) (*User, error) {
	var u User
	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDatabase("querying user", err)
	}
	return &u, nil
}

// List returns all users. Order is unspecified.
func (r *SQLRepository) List() ([]*User, error) {
	rows, err := r.db.Query(`SELECT ` + selectColumns + ` FROM users`)
	if err != nil {
		return nil, apperror.NewDatabase("listing users", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var users []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, apperror.NewDatabase("scanning user", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabase("iterating users", err)
	}
	return users, nil
}

// Update applies the patch to the stored user and refreshes updated_at.
func (r *SQLRepository) Update(id string, patch Patch) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if patch.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *patch.FirstName)
	}
	if patch.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *patch.LastName)
	}
	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *patch.PasswordHash)
	}
	args = append(args, id)

	result, err := r.db.Exec("UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return apperror.NewConflict("email already registered")
		}
		return apperror.NewDatabase("updating user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDatabase("checking rows affected", err)
	}
	if rows == 0 {
		return apperror.NewNotFound("user not found")
	}
	return nil
}
