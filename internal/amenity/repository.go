package amenity

import (
	"database/sql"
	"errors"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/db"
)

// Repository is the storage contract for amenities. Get methods return
// (nil, nil) when no amenity matches.
type Repository interface {
	Insert(a *Amenity) error
	GetByID(id string) (*Amenity, error)
	GetByName(name string) (*Amenity, error)
	List() ([]*Amenity, error)
	Update(id string, patch Patch) error
}

// SQLRepository stores amenities in SQLite.
type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository creates a SQLite-backed amenity repository.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// Insert persists a fully constructed amenity. Duplicate names surface as
// Conflict via the unique index.
func (r *SQLRepository) Insert(a *Amenity) error {
	_, err := r.db.Exec(
		`INSERT INTO amenities (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.Name, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return apperror.NewConflict("amenity name already registered")
		}
		return apperror.NewDatabase("inserting amenity", err)
	}
	return nil
}

// GetByID returns the amenity with the given id, or nil if none exists.
func (r *SQLRepository) GetByID(id string) (*Amenity, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM amenities WHERE id = ?`, id)
}

// GetByName returns the amenity with the given name (exact, case-sensitive
// match), or nil if none exists.
func (r *SQLRepository) GetByName(name string) (*Amenity, error) {
	// BINARY forces a case-sensitive comparison regardless of column collation.
	return r.getOne(`SELECT id, name, created_at, updated_at FROM amenities WHERE name = ? COLLATE BINARY`, name)
}

func (r *SQLRepository) getOne(query string, arg any) (*Amenity, error) {
	var a Amenity
	err := r.db.QueryRow(query, arg).Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDatabase("querying amenity", err)
	}
	return &a, nil
}

// List returns all amenities. Order is unspecified.
func (r *SQLRepository) List() ([]*Amenity, error) {
	rows, err := r.db.Query(`SELECT id, name, created_at, updated_at FROM amenities`)
	if err != nil {
		return nil, apperror.NewDatabase("listing amenities", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var amenities []*Amenity
	for rows.Next() {
		var a Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, apperror.NewDatabase("scanning amenity", err)
		}
		amenities = append(amenities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabase("iterating amenities", err)
	}
	return amenities, nil
}

// Update applies the patch to the stored amenity and refreshes updated_at.
func (r *SQLRepository) Update(id string, patch Patch) error {
	if patch.Name == nil {
		// Nothing to change but the contract still refreshes updated_at.
		result, err := r.db.Exec(`UPDATE amenities SET updated_at = ? WHERE id = ?`, time.Now().UTC(), id)
		return r.checkUpdate(result, err)
	}

	result, err := r.db.Exec(
		`UPDATE amenities SET name = ?, updated_at = ? WHERE id = ?`,
		*patch.Name, time.Now().UTC(), id,
	)
	return r.checkUpdate(result, err)
}

func (r *SQLRepository) checkUpdate(result sql.Result, err error) error {
	if err != nil {
		if db.IsUniqueViolation(err) {
			return apperror.NewConflict("amenity name already registered")
		}
		return apperror.NewDatabase("updating amenity", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDatabase("checking rows affected", err)
	}
	if rows == 0 {
		return apperror.NewNotFound("amenity not found")
	}
	return nil
}
