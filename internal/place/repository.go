package place

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// Repository is the storage contract for places. GetByID returns (nil, nil)
// when no place matches. The place↔amenity relation is owned by this
// repository and persisted as (place_id, amenity_id) pairs.
type Repository interface {
	Insert(p *Place, amenityIDs []string) error
	GetByID(id string) (*Place, error)
	List() ([]*Place, error)
	ListByOwnerID(ownerID string) ([]*Place, error)
	Update(id string, patch Patch) error
	AmenityIDs(placeID string) ([]string, error)
}

// SQLRepository stores places in SQLite.
type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository creates a SQLite-backed place repository.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

const selectColumns = `id, title, description, price, latitude, longitude, owner_id, created_at, updated_at`

// Insert persists a fully constructed place along with its amenity links,
// atomically.
func (r *SQLRepository) Insert(p *Place, amenityIDs []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return apperror.NewDatabase("beginning transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(
		`INSERT INTO places (`+selectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.OwnerID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewDatabase("inserting place", err)
	}

	if err := insertAmenityLinks(tx, p.ID, amenityIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperror.NewDatabase("committing place", err)
	}
	return nil
}

// GetByID returns the place with the given id, or nil if none exists.
func (r *SQLRepository) GetByID(id string) (*Place, error) {
	var p Place
	err := r.db.QueryRow(`SELECT `+selectColumns+` FROM places WHERE id = ?`, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDatabase("querying place", err)
	}
	return &p, nil
}

// List returns all places. Order is unspecified.
func (r *SQLRepository) List() ([]*Place, error) {
	return r.list(`SELECT ` + selectColumns + ` FROM places`)
}

// ListByOwnerID returns all places owned by the given user.
func (r *SQLRepository) ListByOwnerID(ownerID string) ([]*Place, error) {
	return r.list(`SELECT `+selectColumns+` FROM places WHERE owner_id = ?`, ownerID)
}

func (r *SQLRepository) list(query string, args ...any) ([]*Place, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperror.NewDatabase("listing places", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var places []*Place
	for rows.Next() {
		var p Place
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, apperror.NewDatabase("scanning place", err)
		}
		places = append(places, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabase("iterating places", err)
	}
	return places, nil
}

// Update applies the patch to the stored place and refreshes updated_at.
// When the patch carries an amenity set, the links are replaced in the same
// transaction.
func (r *SQLRepository) Update(id string, patch Patch) error {
	tx, err := r.db.Begin()
	if err != nil {
		return apperror.NewDatabase("beginning transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *patch.Price)
	}
	if patch.Latitude != nil {
		sets = append(sets, "latitude = ?")
		args = append(args, *patch.Latitude)
	}
	if patch.Longitude != nil {
		sets = append(sets, "longitude = ?")
		args = append(args, *patch.Longitude)
	}
	args = append(args, id)

	result, err := tx.Exec("UPDATE places SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return apperror.NewDatabase("updating place", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDatabase("checking rows affected", err)
	}
	if rows == 0 {
		return apperror.NewNotFound("place not found")
	}

	if patch.AmenityIDs != nil {
		if _, err := tx.Exec(`DELETE FROM place_amenities WHERE place_id = ?`, id); err != nil {
			return apperror.NewDatabase("clearing amenity links", err)
		}
		if err := insertAmenityLinks(tx, id, *patch.AmenityIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return apperror.NewDatabase("committing place update", err)
	}
	return nil
}

// AmenityIDs returns the ids of all amenities linked to the place.
func (r *SQLRepository) AmenityIDs(placeID string) ([]string, error) {
	rows, err := r.db.Query(`SELECT amenity_id FROM place_amenities WHERE place_id = ?`, placeID)
	if err != nil {
		return nil, apperror.NewDatabase("listing amenity links", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperror.NewDatabase("scanning amenity link", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabase("iterating amenity links", err)
	}
	return ids, nil
}

func insertAmenityLinks(tx *sql.Tx, placeID string, amenityIDs []string) error {
	for _, amenityID := range amenityIDs {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO place_amenities (place_id, amenity_id) VALUES (?, ?)`,
			placeID, amenityID,
		); err != nil {
			return apperror.NewDatabase("inserting amenity link", err)
		}
	}
	return nil
}
