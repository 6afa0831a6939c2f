package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/kwalters/stay-catalog/internal/amenity"
	"github.com/kwalters/stay-catalog/internal/auth"
	"github.com/kwalters/stay-catalog/internal/catalog"
	"github.com/kwalters/stay-catalog/internal/config"
	"github.com/kwalters/stay-catalog/internal/db"
	"github.com/kwalters/stay-catalog/internal/place"
	"github.com/kwalters/stay-catalog/internal/review"
	"github.com/kwalters/stay-catalog/internal/user"
)

// services bundles the wired service layer with the optional database handle.
// database is nil when the memory backend is selected.
type services struct {
	catalog  *catalog.Service
	auth     *auth.Service
	tokens   *auth.TokenManager
	database *sql.DB
}

// buildServices wires repositories and services from configuration.
func buildServices(cfg *config.Config) (*services, error) {
	var (
		users     catalog.UserRepository
		amenities catalog.AmenityRepository
		places    catalog.PlaceRepository
		reviews   catalog.ReviewRepository
		database  *sql.DB
	)

	switch cfg.Store {
	case config.StoreMemory:
		users = user.NewMemoryRepository()
		amenities = amenity.NewMemoryRepository()
		places = place.NewMemoryRepository()
		reviews = review.NewMemoryRepository()
	default:
		path := cfg.DBPath
		if path == "" {
			var err error
			path, err = db.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		var err error
		database, err = db.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		users = user.NewSQLRepository(database)
		amenities = amenity.NewSQLRepository(database)
		places = place.NewSQLRepository(database)
		reviews = review.NewSQLRepository(database)
	}

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenDuration)

	return &services{
		catalog:  catalog.NewService(users, amenities, places, reviews, hasher),
		auth:     auth.NewService(users, hasher, tokens),
		tokens:   tokens,
		database: database,
	}, nil
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if database == nil {
		return
	}
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
