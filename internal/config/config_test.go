package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SC_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("listen addr = %q, want %q", cfg.ListenAddr, ":8080")
	}
	if cfg.Store != StoreSQLite {
		t.Errorf("store = %q, want %q", cfg.Store, StoreSQLite)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Errorf("token duration = %v, want 24h", cfg.TokenDuration)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SC_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when SC_JWT_SECRET is unset")
	}
}

func TestLoadTokenTTL(t *testing.T) {
	t.Setenv("SC_JWT_SECRET", "test-secret")
	t.Setenv("SC_TOKEN_TTL_MINUTES", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenDuration != 30*time.Minute {
		t.Errorf("token duration = %v, want 30m", cfg.TokenDuration)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("SC_JWT_SECRET", "test-secret")
	t.Setenv("SC_TOKEN_TTL_MINUTES", "nope")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid SC_TOKEN_TTL_MINUTES")
	}
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("SC_JWT_SECRET", "test-secret")
	t.Setenv("SC_STORE", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown SC_STORE")
	}
}
