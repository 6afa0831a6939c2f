package web

import (
	"net/http"

	"github.com/kwalters/stay-catalog/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, loginResponse{AccessToken: token, TokenType: "Bearer"}, http.StatusOK)
}

// callerClaims pulls the verified claims the auth middleware stored. Routes
// registered without the middleware must not call this.
func callerClaims(r *http.Request) (auth.Claims, bool) {
	return auth.ClaimsFromContext(r.Context())
}
