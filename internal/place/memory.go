package place

import (
	"sync"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// MemoryRepository is an in-memory place store for tests and single-node mode.
type MemoryRepository struct {
	mu     sync.RWMutex
	places map[string]Place
	links  map[string][]string // place id -> amenity ids
}

// NewMemoryRepository creates an empty in-memory place repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		places: make(map[string]Place),
		links:  make(map[string][]string),
	}
}

// Insert persists the place and its amenity links.
func (r *MemoryRepository) Insert(p *Place, amenityIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.places[p.ID] = *p
	r.links[p.ID] = dedupe(amenityIDs)
	return nil
}

// GetByID returns the place with the given id, or nil if none exists.
func (r *MemoryRepository) GetByID(id string) (*Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.places[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List returns all places. Order is unspecified.
func (r *MemoryRepository) List() ([]*Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	places := make([]*Place, 0, len(r.places))
	for _, p := range r.places {
		copied := p
		places = append(places, &copied)
	}
	return places, nil
}

// ListByOwnerID returns all places owned by the given user.
func (r *MemoryRepository) ListByOwnerID(ownerID string) ([]*Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var places []*Place
	for _, p := range r.places {
		if p.OwnerID == ownerID {
			copied := p
			places = append(places, &copied)
		}
	}
	return places, nil
}

// Update applies the patch to the stored place and refreshes updated_at.
func (r *MemoryRepository) Update(id string, patch Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.places[id]
	if !ok {
		return apperror.NewNotFound("place not found")
	}

	patch.apply(&p)
	p.UpdatedAt = time.Now().UTC()
	r.places[id] = p

	if patch.AmenityIDs != nil {
		r.links[id] = dedupe(*patch.AmenityIDs)
	}
	return nil
}

// AmenityIDs returns the ids of all amenities linked to the place.
func (r *MemoryRepository) AmenityIDs(placeID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.links[placeID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
