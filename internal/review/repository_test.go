package review

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kwalters/stay-catalog/internal/apperror"
	"github.com/kwalters/stay-catalog/internal/db"
)

// testEnv bundles a repository with seeding helpers. SQLite enforces the
// author/place foreign keys, so referenced rows must exist there; the memory
// store has no such constraint and seeds are no-ops.
type testEnv struct {
	repo      Repository
	seedUser  func(t *testing.T, id string)
	seedPlace func(t *testing.T, id, ownerID string)
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
			repo:      NewSQLRepository(database),
			seedUser:  func(t *testing.T, id string) { seedUserRow(t, database, id) },
			seedPlace: func(t *testing.T, id, ownerID string) { seedPlaceRow(t, database, id, ownerID) },
		},
		"memory": {
			repo:      NewMemoryRepository(),
			seedUser:  func(*testing.T, string) {},
			seedPlace: func(*testing.T, string, string) {},
		},
	}
}

func seedUserRow(t *testing.T, database *sql.DB, id string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := database.Exec(
		`INSERT INTO users (id, first_name, last_name, email, password_hash, is_admin, created_at, updated_at) VALUES (?, ?, ?, ?, ?, 0, ?, ?)`,
		id, "Test", "Author", id+"@example.com", "x", now, now,
	)
	if err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func seedPlaceRow(t *testing.T, database *sql.DB, id, ownerID string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := database.Exec(
		`INSERT INTO places (id, title, description, price, latitude, longitude, owner_id, created_at, updated_at) VALUES (?, ?, '', 100, 10, 10, ?, ?, ?)`,
		id, "Cabin", ownerID, now, now,
	)
	if err != nil {
		t.Fatalf("seed place %s: %v", id, err)
	}
}

func newReview(userID, placeID string) *Review {
	now := time.Now().UTC()
	return &Review{
		ID:        uuid.NewString(),
		Text:      "Great stay",
		Rating:    4,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestValidateText(t *testing.T) {
	if err := ValidateText("fine"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, text := range []string{"", "   ", "\t\n"} {
		if err := ValidateText(text); !apperror.IsValidation(err) {
			t.Errorf("ValidateText(%q): expected Validation error, got %v", text, err)
		}
	}
}

func TestValidateRating(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		if err := ValidateRating(rating); err != nil {
			t.Errorf("ValidateRating(%d): unexpected error: %v", rating, err)
		}
	}
	for _, rating := range []int{0, 6, -1} {
		if err := ValidateRating(rating); !apperror.IsValidation(err) {
			t.Errorf("ValidateRating(%d): expected Validation error, got %v", rating, err)
		}
	}
}

func TestInsertAndGet(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			env.seedUser(t, "author1")
			env.seedPlace(t, "place1", "author1")

			rv := newReview("author1", "place1")
			if err := env.repo.Insert(rv); err != nil {
				t.Fatalf("insert: %v", err)
			}

			got, err := env.repo.GetByID(rv.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got == nil || got.Text != "Great stay" || got.Rating != 4 {
				t.Errorf("got %+v", got)
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
			env.seedUser(t, "author1")
			env.seedPlace(t, "place1", "author1")

			rv := newReview("author1", "place1")
			if err := env.repo.Insert(rv); err != nil {
				t.Fatalf("insert: %v", err)
			}

			rating := 2
			if err := env.repo.Update(rv.ID, Patch{Rating: &rating}); err != nil {
				t.Fatalf("update: %v", err)
			}

			got, err := env.repo.GetByID(rv.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got.Rating != 2 {
				t.Errorf("rating = %d, want 2", got.Rating)
			}
			if got.Text != "Great stay" {
				t.Errorf("text changed unexpectedly: %q", got.Text)
			}
		})
	}
}

func TestUpdateAbsent(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			text := "edited"
			err := env.repo.Update("missing", Patch{Text: &text})
			if !apperror.IsNotFound(err) {
				t.Fatalf("expected NotFound, got %v", err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			env.seedUser(t, "author1")
			env.seedPlace(t, "place1", "author1")

			rv := newReview("author1", "place1")
			if err := env.repo.Insert(rv); err != nil {
				t.Fatalf("insert: %v", err)
			}

			existed, err := env.repo.Delete(rv.ID)
			if err != nil {
				t.Fatalf("delete: %v", err)
			}
			if !existed {
				t.Error("expected existed = true")
			}

			got, err := env.repo.GetByID(rv.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got != nil {
				t.Errorf("review still present: %+v", got)
			}

			existed, err = env.repo.Delete(rv.ID)
			if err != nil {
				t.Fatalf("second delete: %v", err)
			}
			if existed {
				t.Error("expected existed = false on second delete")
			}
		})
	}
}

func TestListByPlaceAndAuthor(t *testing.T) {
	for name, env := range testEnvs(t) {
		t.Run(name, func(t *testing.T) {
			env.seedUser(t, "author1")
			env.seedUser(t, "author2")
			env.seedPlace(t, "place1", "author1")
			env.seedPlace(t, "place2", "author2")

			for i := 0; i < 2; i++ {
				if err := env.repo.Insert(newReview("author1", "place1")); err != nil {
					t.Fatalf("insert: %v", err)
				}
			}
			if err := env.repo.Insert(newReview("author2", "place2")); err != nil {
				t.Fatalf("insert: %v", err)
			}

			byPlace, err := env.repo.ListByPlaceID("place1")
			if err != nil {
				t.Fatalf("list by place: %v", err)
			}
			if len(byPlace) != 2 {
				t.Errorf("len = %d, want 2", len(byPlace))
			}

			byAuthor, err := env.repo.ListByAuthorID("author2")
			if err != nil {
				t.Fatalf("list by author: %v", err)
			}
			if len(byAuthor) != 1 {
				t.Errorf("len = %d, want 1", len(byAuthor))
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
