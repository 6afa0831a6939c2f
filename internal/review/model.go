// Package review provides the review domain model and data access.
package review

import (
	"strings"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// Review represents a user's rating of a place. UserID is always the verified
// author; it is never taken from client input.
type Review struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateText checks that text is non-empty after trimming whitespace.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperror.NewValidation("review text cannot be empty")
	}
	return nil
}

// ValidateRating checks that rating is an integer from 1 to 5.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperror.NewValidation("rating must be between 1 and 5")
	}
	return nil
}

// Patch is a partial update carrying only the fields to change. The author
// and place references are immutable.
type Patch struct {
	Text   *string
	Rating *int
}

func (p Patch) apply(rv *Review) {
	if p.Text != nil {
		rv.Text = *p.Text
	}
	if p.Rating != nil {
		rv.Rating = *p.Rating
	}
}

// Validate checks the invariants of the fields present in the patch.
func (p Patch) Validate() error {
	if p.Text != nil {
		if err := ValidateText(*p.Text); err != nil {
			return err
		}
	}
	if p.Rating != nil {
		if err := ValidateRating(*p.Rating); err != nil {
			return err
		}
	}
	return nil
}
