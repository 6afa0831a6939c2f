package place

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/db"
)

// testEnv bundles a repository with seeding helpers. SQLite enforces the
// owner/amenity foreign keys, so referenced rows must exist there; the memory
// store has no such constraint and seeds are no-ops.
type testEnv struct {
	repo        Repository
	seedUser    func(t *testing.T, id string)
	seedAmenity func(t *testing.T, id string)
}

func testEnvs(t *testing.T) map[string]testEnv {
	t.Helper()
	database, err := db.Open(t.TempDir() + "/catalog.db")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("close test db: %v", err)
		}
	})

	return map[string]testEnv{
		"sqlite": {
			repo:        NewSQLRepository(database),
			seedUser:    func(t *testing.T, id string) { seedUserRow(t, database, id) },
			seedAmenity: func(t *testing.T, id string) { seedAmenityRow(t, database, id) },
		},
		"memory": {
			repo:        NewMemoryRepository(),
			seedUser:    func(*testing.T, string) {},
			seedAmenity: func(*testing.T, string) {},
		},
	}
}

func seedUserRow(t *testing.T, database *sql.DB, id string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := database.Exec(
		`INSERT INTO users (id, first_name, last_name, email, password_hash, is_admin, created_at, updated_at) VALUES (?, ?, ?, ?, ?, 0, ?, ?)`,
		id, "Test", "Owner", id+"@example.com", "x", now, now,
	)
	if err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func seedAmenityRow(t *testing.T, database *sql.DB, id string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := database.Exec(
		`INSERT INTO amenities (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, "amenity-"+id, now, now,
	)
	if err != nil {
		t.Fatalf("seed amenity %s: %v", id, err)
	}
}

func newPlace(ownerID string) *Place {
	now := time.Now().UTC()
	return &Place{
		ID:        uuid.NewString(),
		Title:     "Cabin",
		Price:     100,
		Latitude:  10,
		Longitude: 10,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRoundPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{100.005, 100.01},
		{100.015, 100.02},
		{99.999, 100.0},
		{0, 0},
		{12.345, 12.35},
	}
	for _, tt := range tests {
		if got := RoundPrice(tt.in); got != tt.want {
			t.Errorf("RoundPrice(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		price     float64
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"valid", "Cabin", 100, 10, 10, false},
		{"boundary coordinates", "Cabin", 0, 90, -180, false},
		{"empty title", "", 100, 10, 10, true},
		{"blank title", "  ", 100, 10, 10, true},
		{"negative price", "Cabin", -1, 10, 10, true},
		{"latitude too high", "Cabin", 100, 90.1, 10, true},
		{"latitude too low", "Cabin", 100, -90.1, 10, true},
		{"longitude too high", "Cabin", 100, 10, 180.1, true},
		{"longitude too low", "Cabin", 100, 10, -180.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.title, tt.price, tt.latitude, tt.longitude)
			if tt.wantErr && !apperror.IsValidation(err) {
				t.Errorf("expected Validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestInsertAndGet(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			env.seedUser(t, "owner1")
			env.seedAmenity(t, "am1")
			env.seedAmenity(t, "am2")

			p := newPlace("owner1")
			if err := env.repo.Insert(p, []string{"am1", "am2"}); err != nil {
				t.Fatalf("insert: %v", err)
			}

			got, err := env.repo.GetByID(p.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got == nil || got.Title != "Cabin" || got.OwnerID != "owner1" {
				t.Errorf("got %+v", got)
			}

			ids, err := env.repo.AmenityIDs(p.ID)
			if err != nil {
				t.Fatalf("amenity ids: %v", err)
			}
			if len(ids) != 2 {
				t.Errorf("amenity ids = %v, want 2 entries", ids)
			}
		})
	}
}

func TestGetAbsent(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			got, err := env.repo.GetByID("missing")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != nil {
				t.Errorf("expected nil, got %+v", got)
			}
		})
	}
}

func TestUpdatePartial(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			env.seedUser(t, "owner1")
			p := newPlace("owner1")
			if err := env.repo.Insert(p, nil); err != nil {
				t.Fatalf("insert: %v", err)
			}

			price := 150.5
			if err := env.repo.Update(p.ID, Patch{Price: &price}); err != nil {
				t.Fatalf("update: %v", err)
			}

			got, err := env.repo.GetByID(p.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got.Price != 150.5 {
				t.Errorf("price = %v, want 150.5", got.Price)
			}
			if got.Title != "Cabin" {
				t.Errorf("title changed unexpectedly: %q", got.Title)
			}
		})
	}
}

func TestUpdateReplacesAmenities(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			env.seedUser(t, "owner1")
			env.seedAmenity(t, "am1")
			env.seedAmenity(t, "am2")
			env.seedAmenity(t, "am3")

			p := newPlace("owner1")
			if err := env.repo.Insert(p, []string{"am1", "am2"}); err != nil {
				t.Fatalf("insert: %v", err)
			}

			replacement := []string{"am3"}
			if err := env.repo.Update(p.ID, Patch{AmenityIDs: &replacement}); err != nil {
				t.Fatalf("update: %v", err)
			}

			ids, err := env.repo.AmenityIDs(p.ID)
			if err != nil {
				t.Fatalf("amenity ids: %v", err)
			}
			if len(ids) != 1 || ids[0] != "am3" {
				t.Errorf("amenity ids = %v, want [am3]", ids)
			}
		})
	}
}

func TestUpdateAbsent(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			price := 10.0
			err := env.repo.Update("missing", Patch{Price: &price})
			if !apperror.IsNotFound(err) {
				t.Fatalf("expected NotFound, got %v", err)
			}
		})
	}
}

func TestListByOwner(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			env.seedUser(t, "owner1")
			env.seedUser(t, "owner2")

			for i := 0; i < 2; i++ {
				if err := env.repo.Insert(newPlace("owner1"), nil); err != nil {
					t.Fatalf("insert: %v", err)
				}
			}
			if err := env.repo.Insert(newPlace("owner2"), nil); err != nil {
				t.Fatalf("insert: %v", err)
			}

			mine, err := env.repo.ListByOwnerID("owner1")
			if err != nil {
				t.Fatalf("list by owner: %v", err)
			}
			if len(mine) != 2 {
				t.Errorf("len = %d, want 2", len(mine))
			}

			all, err := env.repo.List()
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(all) != 3 {
				t.Errorf("len = %d, want 3", len(all))
			}
		})
	}
}
