package web

import (
	"net/http"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/catalog"
	"github.com/kwalters/stay-catalog/internal/place"
)

type createPlaceRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Latitude    float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64  `json:"longitude" validate:"gte=-180,lte=180"`
	AmenityIDs  []string `json:"amenity_ids"`
}

type updatePlaceRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Latitude    *float64  `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64  `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	AmenityIDs  *[]string `json:"amenity_ids"`
}

func (s *Server) handleCreatePlace(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(r)
	if !ok {
		writeError(w, apperror.NewAuth("authentication required", nil))
		return
	}

	var req createPlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	p, err := s.catalog.CreatePlace(claims, catalog.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, p, http.StatusCreated)
}

func (s *Server) handleUpdatePlace(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(r)
	if !ok {
		writeError(w, apperror.NewAuth("authentication required", nil))
		return
	}

	var req updatePlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	p, err := s.catalog.UpdatePlace(claims, r.PathValue("id"), place.Patch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, p, http.StatusOK)
}

func (s *Server) handleGetPlace(w http.ResponseWriter, r *http.Request) {
	detail, err := s.catalog.GetPlace(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, detail, http.StatusOK)
}

func (s *Server) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := s.catalog.ListPlaces()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, places, http.StatusOK)
}

func (s *Server) handleListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.catalog.ListReviewsForPlace(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, reviews, http.StatusOK)
}
