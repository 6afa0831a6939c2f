package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/kwalters/stay-catalog/internal/amenity"
	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/auth"
)

// CreateAmenity registers a new amenity. Admin only; names are unique and
// compared case-sensitively, so "WiFi" and "wifi" are distinct amenities.
func (s *Service) CreateAmenity(claims auth.Claims, name string) (*amenity.Amenity, error) {
	if !allowed(claims, actionCreateAmenity, "") {
		return nil, apperror.NewForbidden("admin privileges required")
	}
	if err := amenity.ValidateName(name); err != nil {
		return nil, err
	}

	existing, err := s.amenities.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("amenity name already exists")
	}

	now := time.Now().UTC()
	a := &amenity.Amenity{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.amenities.Insert(a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAmenity renames an amenity. Admin only. Renaming to a name held by a
// different amenity is a conflict.
func (s *Service) UpdateAmenity(claims auth.Claims, id string, name string) (*amenity.Amenity, error) {
	if !allowed(claims, actionUpdateAmenity, "") {
		return nil, apperror.NewForbidden("admin privileges required")
	}
	if err := amenity.ValidateName(name); err != nil {
		return nil, err
	}

	target, err := s.amenities.GetByID(id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NewNotFound("amenity not found")
	}

	other, err := s.amenities.GetByName(name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, apperror.NewConflict("amenity name already exists")
	}

	if err := s.amenities.Update(id, amenity.Patch{Name: &name}); err != nil {
		return nil, err
	}
	return s.GetAmenity(id)
}

// GetAmenity returns the amenity with the given id.
func (s *Service) GetAmenity(id string) (*amenity.Amenity, error) {
	a, err := s.amenities.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NewNotFound("amenity not found")
	}
	return a, nil
}

// ListAmenities returns all amenities.
func (s *Service) ListAmenities() ([]*amenity.Amenity, error) {
	return s.amenities.List()
}
