// Package amenity provides the amenity domain model and data access.
package amenity

import (
	"strings"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// MaxNameLength is the longest allowed amenity name.
const MaxNameLength = 50

// Amenity represents a bookable feature of a place (Wi-Fi, parking, ...).
// Names are unique across all amenities, matched case-sensitively.
type Amenity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateName checks the name invariant: required, non-blank, at most 50 chars.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.NewValidation("amenity name is required")
	}
	if len(name) > MaxNameLength {
		return apperror.NewValidation("amenity name must be at most 50 characters")
	}
	return nil
}

// Patch is a partial update carrying only the fields to change.
type Patch struct {
	Name *string
}

func (p Patch) apply(a *Amenity) {
	if p.Name != nil {
		a.Name = *p.Name
	}
}
