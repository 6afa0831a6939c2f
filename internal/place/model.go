// Package place provides the place (listing) domain model and data access.
package place

import (
	"math"
	"strings"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// Place represents a rentable listing. OwnerID always references the user who
// created the place; it is never taken from client input.
type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoundPrice rounds a price to 2 decimal places, the stored precision.
func RoundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

// Validate checks the place field invariants.
func Validate(title string, price, latitude, longitude float64) error {
	if strings.TrimSpace(title) == "" {
		return apperror.NewValidation("title is required")
	}
	if price < 0 {
		return apperror.NewValidation("price must not be negative")
	}
	if latitude < -90 || latitude > 90 {
		return apperror.NewValidation("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return apperror.NewValidation("longitude must be between -180 and 180")
	}
	return nil
}

// Patch is a partial update. AmenityIDs, when present, replaces the full
// amenity set of the place.
type Patch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	AmenityIDs  *[]string
}

func (p Patch) apply(pl *Place) {
	if p.Title != nil {
		pl.Title = *p.Title
	}
	if p.Description != nil {
		pl.Description = *p.Description
	}
	if p.Price != nil {
		pl.Price = *p.Price
	}
	if p.Latitude != nil {
		pl.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		pl.Longitude = *p.Longitude
	}
}

// Validate checks the invariants of the fields present in the patch.
func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return apperror.NewValidation("title is required")
	}
	if p.Price != nil && *p.Price < 0 {
		return apperror.NewValidation("price must not be negative")
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		return apperror.NewValidation("latitude must be between -90 and 90")
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		return apperror.NewValidation("longitude must be between -180 and 180")
	}
	return nil
}
