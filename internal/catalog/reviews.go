package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/auth"
	"github.com/kwalters/stay-catalog/internal/review"
)

// CreateReviewInput carries the fields for a new review. The author is always
// the authenticated caller.
type CreateReviewInput struct {
	Text    string
	Rating  int
	PlaceID string
}

// CreateReview adds a review of an existing place, authored by the caller.
// A dangling place reference is a validation failure.
func (s *Service) CreateReview(claims auth.Claims, in CreateReviewInput) (*review.Review, error) {
	if !allowed(claims, actionCreateReview, "") {
		return nil, apperror.NewForbidden("not allowed")
	}
	if err := review.ValidateText(in.Text); err != nil {
		return nil, err
	}
	if err := review.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	p, err := s.places.GetByID(in.PlaceID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewValidation("unknown place: " + in.PlaceID)
	}

	now := time.Now().UTC()
	rv := &review.Review{
		ID:        uuid.NewString(),
		Text:      in.Text,
		Rating:    in.Rating,
		UserID:    claims.UserID,
		PlaceID:   in.PlaceID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.reviews.Insert(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// UpdateReview edits a review's text or rating. Only the author may edit;
// admins can delete reviews but not rewrite them.
func (s *Service) UpdateReview(claims auth.Claims, id string, patch review.Patch) (*review.Review, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	target, err := s.reviews.GetByID(id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NewNotFound("review not found")
	}
	if !allowed(claims, actionUpdateReview, target.UserID) {
		return nil, apperror.NewForbidden("only the author can edit a review")
	}

	if err := s.reviews.Update(id, patch); err != nil {
		return nil, err
	}
	return s.GetReview(id)
}

// DeleteReview removes a review. The author or an admin may delete.
func (s *Service) DeleteReview(claims auth.Claims, id string) error {
	target, err := s.reviews.GetByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return apperror.NewNotFound("review not found")
	}
	if !allowed(claims, actionDeleteReview, target.UserID) {
		return apperror.NewForbidden("cannot delete another user's review")
	}

	existed, err := s.reviews.Delete(id)
	if err != nil {
		return err
	}
	if !existed {
		return apperror.NewNotFound("review not found")
	}
	return nil
}

// GetReview returns the review with the given id.
func (s *Service) GetReview(id string) (*review.Review, error) {
	rv, err := s.reviews.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, apperror.NewNotFound("review not found")
	}
	return rv, nil
}

// ListReviews returns all reviews.
func (s *Service) ListReviews() ([]*review.Review, error) {
	return s.reviews.List()
}

// ListReviewsForPlace returns the reviews of a place. The place must exist;
// reviews of a missing place are a not-found, not an empty list.
func (s *Service) ListReviewsForPlace(placeID string) ([]*review.Review, error) {
	p, err := s.places.GetByID(placeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("place not found")
	}
	return s.reviews.ListByPlaceID(placeID)
}
