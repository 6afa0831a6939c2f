package web

import (
	"net/http"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

type amenityRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

func (s *Server) handleCreateAmenity(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(r)
	if !ok {
		writeError(w, apperror.NewAuth("authentication required", nil))
		return
	}

	var req amenityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	a, err := s.catalog.CreateAmenity(claims, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, a, http.StatusCreated)
}

func (s *Server) handleUpdateAmenity(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(r)
	if !ok {
		writeError(w, apperror.NewAuth("authentication required", nil))
		return
	}

	var req amenityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	a, err := s.catalog.UpdateAmenity(claims, r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, a, http.StatusOK)
}

func (s *Server) handleGetAmenity(w http.ResponseWriter, r *http.Request) {
	a, err := s.catalog.GetAmenity(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, a, http.StatusOK)
}

func (s *Server) handleListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := s.catalog.ListAmenities()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, amenities, http.StatusOK)
}
