package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/kwalters/stay-catalog/internal/amenity"
	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/auth"
	"github.com/kwalters/stay-catalog/internal/place"
	"github.com/kwalters/stay-catalog/internal/user"
)

// CreatePlaceInput carries the fields for a new listing. The owner is always
// the authenticated caller and is not part of the input.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	AmenityIDs  []string
}

// PlaceDetail is a place joined with its owner's public fields and its
// amenities.
type PlaceDetail struct {
	place.Place
	Owner     user.Public        `json:"owner"`
	Amenities []*amenity.Amenity `json:"amenities"`
}

// checkAmenityRefs verifies that every referenced amenity exists. A dangling
// reference is a validation failure, not a not-found.
func (s *Service) checkAmenityRefs(ids []string) error {
	for _, id := range ids {
		a, err := s.amenities.GetByID(id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperror.NewValidation("unknown amenity: " + id)
		}
	}
	return nil
}

// CreatePlace registers a new listing owned by the caller. The price is
// rounded to two decimals before storage.
func (s *Service) CreatePlace(claims auth.Claims, in CreatePlaceInput) (*place.Place, error) {
	if !allowed(claims, actionCreatePlace, "") {
		return nil, apperror.NewForbidden("not allowed")
	}
	if err := place.Validate(in.Title, in.Price, in.Latitude, in.Longitude); err != nil {
		return nil, err
	}
	if err := s.checkAmenityRefs(in.AmenityIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &place.Place{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Price:       place.RoundPrice(in.Price),
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		OwnerID:     claims.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.places.Insert(p, in.AmenityIDs); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePlace applies a partial update. Only the owner or an admin may modify
// a listing; the owner reference itself never changes.
func (s *Service) UpdatePlace(claims auth.Claims, id string, patch place.Patch) (*place.Place, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	target, err := s.places.GetByID(id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NewNotFound("place not found")
	}
	if !allowed(claims, actionUpdatePlace, target.OwnerID) {
		return nil, apperror.NewForbidden("cannot modify another user's place")
	}
	if patch.AmenityIDs != nil {
		if err := s.checkAmenityRefs(*patch.AmenityIDs); err != nil {
			return nil, err
		}
	}
	if patch.Price != nil {
		rounded := place.RoundPrice(*patch.Price)
		patch.Price = &rounded
	}

	if err := s.places.Update(id, patch); err != nil {
		return nil, err
	}
	updated, err := s.places.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NewNotFound("place not found")
	}
	return updated, nil
}

// GetPlace returns a listing joined with its owner and amenities.
func (s *Service) GetPlace(id string) (*PlaceDetail, error) {
	p, err := s.places.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("place not found")
	}

	owner, err := s.users.GetByID(p.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NewInternal("place owner missing", nil)
	}

	amenityIDs, err := s.places.AmenityIDs(id)
	if err != nil {
		return nil, err
	}
	amenities := make([]*amenity.Amenity, 0, len(amenityIDs))
	for _, aid := range amenityIDs {
		a, err := s.amenities.GetByID(aid)
		if err != nil {
			return nil, err
		}
		if a != nil {
			amenities = append(amenities, a)
		}
	}

	return &PlaceDetail{Place: *p, Owner: owner.Public(), Amenities: amenities}, nil
}

// ListPlaces returns all listings.
func (s *Service) ListPlaces() ([]*place.Place, error) {
	return s.places.List()
}

// ListPlacesByOwner returns the listings owned by the given user.
func (s *Service) ListPlacesByOwner(ownerID string) ([]*place.Place, error) {
	return s.places.ListByOwnerID(ownerID)
}
