package review

import (
	"sync"
	"time"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

// MemoryRepository keeps reviews in a map. Safe for concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	reviews map[string]Review
}

// NewMemoryRepository creates an empty in-memory review repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{reviews: make(map[string]Review)}
}

func (r *MemoryRepository) Insert(rv *Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews[rv.ID] = *rv
	return nil
}

func (r *MemoryRepository) GetByID(id string) (*Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rv, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	return &rv, nil
}

func (r *MemoryRepository) List() ([]*Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]*Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		copied := rv
		reviews = append(reviews, &copied)
	}
	return reviews, nil
}

func (r *MemoryRepository) ListByPlaceID(placeID string) ([]*Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []*Review
	for _, rv := range r.reviews {
		if rv.PlaceID == placeID {
			copied := rv
			reviews = append(reviews, &copied)
		}
	}
	return reviews, nil
}

func (r *MemoryRepository) ListByAuthorID(userID string) ([]*Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []*Review
	for _, rv := range r.reviews {
		if rv.UserID == userID {
			copied := rv
			reviews = append(reviews, &copied)
		}
	}
	return reviews, nil
}

func (r *MemoryRepository) Update(id string, patch Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rv, ok := r.reviews[id]
	if !ok {
		return apperror.NewNotFound("review not found")
	}
	patch.apply(&rv)
	rv.UpdatedAt = time.Now().UTC()
	r.reviews[id] = rv
	return nil
}

func (r *MemoryRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return false, nil
	}
	delete(r.reviews, id)
	return true, nil
}
