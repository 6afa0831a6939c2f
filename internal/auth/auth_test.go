package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/user"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	signed, err := tm.Issue("user-1", true)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := tm.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || !claims.IsAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	signed, err := tm.Issue("user-1", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := tm.Parse(signed); !apperror.IsAuth(err) {
		t.Errorf("expected Auth error, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	signed, err := NewTokenManager("secret-a", time.Hour).Issue("user-1", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenManager("secret-b", time.Hour).Parse(signed); !apperror.IsAuth(err) {
		t.Errorf("expected Auth error, got %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	if _, err := tm.Parse("not a token"); !apperror.IsAuth(err) {
		t.Errorf("expected Auth error, got %v", err)
	}
}

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Error("hash equals plaintext")
	}
	if !hasher.Verify(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if hasher.Verify(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}

func seedUser(t *testing.T, repo *user.MemoryRepository, hasher *PasswordHasher, email, password string) *user.User {
	t.Helper()
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.NewString(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Insert(u); err != nil {
		t.Fatalf("insert: %v", err)
	}
	return u
}

func TestLogin(t *testing.T) {
	repo := user.NewMemoryRepository()
	hasher := NewPasswordHasher()
	tokens := NewTokenManager("test-secret", time.Hour)
	svc := NewService(repo, hasher, tokens)

	u := seedUser(t, repo, hasher, "ada@example.com", "hunter22")

	signed, err := svc.Login("ada@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != u.ID {
		t.Errorf("user id = %s, want %s", claims.UserID, u.ID)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	repo := user.NewMemoryRepository()
	hasher := NewPasswordHasher()
	svc := NewService(repo, hasher, NewTokenManager("test-secret", time.Hour))

	seedUser(t, repo, hasher, "ada@example.com", "hunter22")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "hunter22"},
		{"wrong password", "ada@example.com", "wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.email, tt.password)
			if !apperror.IsAuth(err) {
				t.Errorf("expected Auth error, got %v", err)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	signed, err := tokens.Issue("user-1", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var gotClaims Claims
	var gotOK bool
	handler := Middleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, gotOK = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + signed, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer garbage", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOK = false
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusNoContent {
				if !gotOK || gotClaims.UserID != "user-1" {
					t.Errorf("claims = %+v, ok = %v", gotClaims, gotOK)
				}
			}
		})
	}
}
