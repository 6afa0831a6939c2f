// Package catalog is the service core. Every operation runs the same shape:
// validate input, resolve cross-entity references, check the write policy,
// then mutate through a repository.
package catalog

import (
	"github.com/kwalters/stay-catalog/internal/amenity"
	"github.com/kwalters/stay-catalog/internal/place"
	"github.com/kwalters/stay-catalog/internal/review"
	"github.com/kwalters/stay-catalog/internal/user"
)

// UserRepository is the slice of user storage the service needs.
type UserRepository interface {
	Insert(u *user.User) error
	GetByID(id string) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	List() ([]*user.User, error)
	Update(id string, patch user.Patch) error
}

// AmenityRepository is the slice of amenity storage the service needs.
type AmenityRepository interface {
	Insert(a *amenity.Amenity) error
	GetByID(id string) (*amenity.Amenity, error)
	GetByName(name string) (*amenity.Amenity, error)
	List() ([]*amenity.Amenity, error)
	Update(id string, patch amenity.Patch) error
}

// PlaceRepository is the slice of place storage the service needs.
type PlaceRepository interface {
	Insert(p *place.Place, amenityIDs []string) error
	GetByID(id string) (*place.Place, error)
	List() ([]*place.Place, error)
	ListByOwnerID(ownerID string) ([]*place.Place, error)
	Update(id string, patch place.Patch) error
	AmenityIDs(placeID string) ([]string, error)
}

// ReviewRepository is the slice of review storage the service needs.
type ReviewRepository interface {
	Insert(rv *review.Review) error
	GetByID(id string) (*review.Review, error)
	List() ([]*review.Review, error)
	ListByPlaceID(placeID string) ([]*review.Review, error)
	Update(id string, patch review.Patch) error
	Delete(id string) (bool, error)
}

// PasswordHasher derives storage-safe hashes from plaintext passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Service exposes the catalog operations over the four entities.
type Service struct {
	users     UserRepository
	amenities AmenityRepository
	places    PlaceRepository
	reviews   ReviewRepository
	hasher    PasswordHasher
}

// NewService creates the catalog service.
func NewService(
	users UserRepository,
	amenities AmenityRepository,
	places PlaceRepository,
	reviews ReviewRepository,
	hasher PasswordHasher,
) *Service {
	return &Service{
		users:     users,
		amenities: amenities,
		places:    places,
		reviews:   reviews,
		hasher:    hasher,
	}
}
