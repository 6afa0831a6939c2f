package web

import (
	"net/http"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/catalog"
)

type createUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=18"`
	IsAdmin   bool   `json:"is_admin"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=18"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(r)
	if !ok {
		writeError(w, apperror.NewAuth("authentication required", nil))
		return
	}

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	u, err := s.catalog.CreateUser(claims, catalog.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, u, http.StatusCreated)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(r)
	if !ok {
		writeError(w, apperror.NewAuth("authentication required", nil))
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	u, err := s.catalog.UpdateUser(claims, r.PathValue("id"), catalog.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, u, http.StatusOK)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.catalog.GetUser(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, u, http.StatusOK)
}

func (s *Server) handleListUserPlaces(w http.ResponseWriter, r *http.Request) {
	u, err := s.catalog.GetUser(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	places, err := s.catalog.ListPlacesByOwner(u.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, places, http.StatusOK)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.catalog.ListUsers()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, users, http.StatusOK)
}
