// Package web provides the HTTP API for the catalog service.
package web

import (
	"net/http"

	"github.com/kwalters/stay-catalog/internal/auth"
	"github.com/kwalters/stay-catalog/internal/catalog"
)

// Server is the JSON API server. Reads are public; all mutations require a
// Bearer token.
type Server struct {
	catalog *catalog.Service
	auth    *auth.Service
	mux     *http.ServeMux
}

// NewServer creates the API server and registers its routes.
func NewServer(catalogSvc *catalog.Service, authSvc *auth.Service, tokens *auth.TokenManager) *Server {
	s := &Server{
		catalog: catalogSvc,
		auth:    authSvc,
		mux:     http.NewServeMux(),
	}

	authed := auth.Middleware(tokens)
	protect := func(h http.HandlerFunc) http.Handler {
		return authed(h)
	}

	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	s.mux.Handle("POST /api/v1/users", protect(s.handleCreateUser))
	s.mux.HandleFunc("GET /api/v1/users", s.handleListUsers)
	s.mux.HandleFunc("GET /api/v1/users/{id}", s.handleGetUser)
	s.mux.HandleFunc("GET /api/v1/users/{id}/places", s.handleListUserPlaces)
	s.mux.Handle("PUT /api/v1/users/{id}", protect(s.handleUpdateUser))

	s.mux.Handle("POST /api/v1/amenities", protect(s.handleCreateAmenity))
	s.mux.HandleFunc("GET /api/v1/amenities", s.handleListAmenities)
	s.mux.HandleFunc("GET /api/v1/amenities/{id}", s.handleGetAmenity)
	s.mux.Handle("PUT /api/v1/amenities/{id}", protect(s.handleUpdateAmenity))

	s.mux.Handle("POST /api/v1/places", protect(s.handleCreatePlace))
	s.mux.HandleFunc("GET /api/v1/places", s.handleListPlaces)
	s.mux.HandleFunc("GET /api/v1/places/{id}", s.handleGetPlace)
	s.mux.Handle("PUT /api/v1/places/{id}", protect(s.handleUpdatePlace))
	s.mux.HandleFunc("GET /api/v1/places/{id}/reviews", s.handleListPlaceReviews)

	s.mux.Handle("POST /api/v1/reviews", protect(s.handleCreateReview))
	s.mux.HandleFunc("GET /api/v1/reviews", s.handleListReviews)
	s.mux.HandleFunc("GET /api/v1/reviews/{id}", s.handleGetReview)
	s.mux.Handle("PUT /api/v1/reviews/{id}", protect(s.handleUpdateReview))
	s.mux.Handle("DELETE /api/v1/reviews/{id}", protect(s.handleDeleteReview))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
