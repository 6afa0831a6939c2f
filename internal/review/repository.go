package review

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// Repository is the storage contract for reviews. GetByID returns (nil, nil)
// when no review matches. Reviews are the only entity with a delete operation.
type Repository interface {
	Insert(rv *Review) error
	GetByID(id string) (*Review, error)
	List() ([]*Review, error)
	ListByPlaceID(placeID string) ([]*Review, error)
	ListByAuthorID(userID string) ([]*Review, error)
	Update(id string, patch Patch) error
	Delete(id string) (bool, error)
}

// SQLRepository stores reviews in SQLite.
type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository creates a SQLite-backed review repository.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

const selectColumns = `id, text, rating, user_id, place_id, created_at, updated_at`

// Insert persists a fully constructed review.
func (r *SQLRepository) Insert(rv *Review) error {
	_, err := r.db.Exec(
		`INSERT INTO reviews (`+selectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rv.ID, rv.Text, rv.Rating, rv.UserID, rv.PlaceID, rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		return apperror.NewDatabase("inserting review", err)
	}
	return nil
}

// GetByID returns the review with the given id, or nil if none exists.
func (r *SQLRepository) GetByID(id string) (*Review, error) {
	var rv Review
	err := r.db.QueryRow(`SELECT `+selectColumns+` FROM reviews WHERE id = ?`, id).Scan(
		&rv.ID, &rv.Text, &rv.Rating, &rv.UserID, &rv.PlaceID, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDatabase("querying review", err)
	}
	return &rv, nil
}

// List returns all reviews. Order is unspecified.
func (r *SQLRepository) List() ([]*Review, error) {
	return r.list(`SELECT ` + selectColumns + ` FROM reviews`)
}

// ListByPlaceID returns all reviews of the given place.
func (r *SQLRepository) ListByPlaceID(placeID string) ([]*Review, error) {
	return r.list(`SELECT `+selectColumns+` FROM reviews WHERE place_id = ?`, placeID)
}

// ListByAuthorID returns all reviews written by the given user.
func (r *SQLRepository) ListByAuthorID(userID string) ([]*Review, error) {
	return r.list(`SELECT `+selectColumns+` FROM reviews WHERE user_id = ?`, userID)
}

func (r *SQLRepository) list(query string, args ...any) ([]*Review, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperror.NewDatabase("listing reviews", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var reviews []*Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.Text, &rv.Rating, &rv.UserID, &rv.PlaceID, &rv.CreatedAt, &rv.UpdatedAt,
		); err != nil {
			return nil, apperror.NewDatabase("scanning review", err)
		}
		reviews = append(reviews, &rv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabase("iterating reviews", err)
	}
	return reviews, nil
}

// Update applies the patch to the stored review and refreshes updated_at.
func (r *SQLRepository) Update(id string, patch Patch) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if patch.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *patch.Text)
	}
	if patch.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, *patch.Rating)
	}
	args = append(args, id)

	result, err := r.db.Exec("UPDATE reviews SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return apperror.NewDatabase("updating review", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDatabase("checking rows affected", err)
	}
	if rows == 0 {
		return apperror.NewNotFound("review not found")
	}
	return nil
}

// Delete removes the review and reports whether it existed.
func (r *SQLRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return false, apperror.NewDatabase("deleting review", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, apperror.NewDatabase("checking rows affected", err)
	}
	return rows > 0, nil
}
