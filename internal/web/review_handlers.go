package web

import (
	"net/http"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/catalog"
	"github.com/kwalters/stay-catalog/internal/review"
)

type createReviewRequest struct {
	Text    string `json:"text" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	PlaceID string `json:"place_id" validate:"required"`
}

type updateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(r)
	if !ok {
		writeError(w, apperror.NewAuth("authentication required", nil))
		return
	}

	var req createReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rv, err := s.catalog.CreateReview(claims, catalog.CreateReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		PlaceID: req.PlaceID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, rv, http.StatusCreated)
}

func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(r)
	if !ok {
		writeError(w, apperror.NewAuth("authentication required", nil))
		return
	}

	var req updateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rv, err := s.catalog.UpdateReview(claims, r.PathValue("id"), review.Patch{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, rv, http.StatusOK)
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(r)
	if !ok {
		writeError(w, apperror.NewAuth("authentication required", nil))
		return
	}

	if err := s.catalog.DeleteReview(claims, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

func (s *Server) handleGetReview(w http.ResponseWriter, r *http.Request) {
	rv, err := s.catalog.GetReview(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, rv, http.StatusOK)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.catalog.ListReviews()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, reviews, http.StatusOK)
}
