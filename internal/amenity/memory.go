package amenity

import (
	"sync"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// MemoryRepository is an in-memory amenity store for tests and
// single-node mode. Operations are atomic; values are copied on read/write.
type MemoryRepository struct {
	mu        sync.RWMutex
	amenities map[string]Amenity
}

// NewMemoryRepository creates an empty in-memory amenity repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{amenities: make(map[string]Amenity)}
}

// Insert persists the amenity, enforcing name uniqueness under the lock.
func (r *MemoryRepository) Insert(a *Amenity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.amenities {
		if existing.Name == a.Name {
			return apperror.NewConflict("amenity name already registered")
		}
	}
	r.amenities[a.ID] = *a
	return nil
}

// GetByID returns the amenity with the given id, or nil if none exists.
func (r *MemoryRepository) GetByID(id string) (*Amenity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.amenities[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// GetByName returns the amenity with the given name, or nil if none exists.
func (r *MemoryRepository) GetByName(name string) (*Amenity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.amenities {
		if a.Name == name {
			copied := a
			return &copied, nil
		}
	}
	return nil, nil
}

// List returns all amenities. Order is unspecified.
func (r *MemoryRepository) List() ([]*Amenity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	amenities := make([]*Amenity, 0, len(r.amenities))
	for _, a := range r.amenities {
		copied := a
		amenities = append(amenities, &copied)
	}
	return amenities, nil
}

// Update applies the patch to the stored amenity and refreshes updated_at.
func (r *MemoryRepository) Update(id string, patch Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.amenities[id]
	if !ok {
		return apperror.NewNotFound("amenity not found")
	}

	if patch.Name != nil && *patch.Name != a.Name {
		for _, existing := range r.amenities {
			if existing.Name == *patch.Name {
				return apperror.NewConflict("amenity name already registered")
			}
		}
	}

	patch.apply(&a)
	a.UpdatedAt = time.Now().UTC()
	r.amenities[id] = a
	return nil
}
