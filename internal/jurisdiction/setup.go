package jurisdiction

import (
	"log"
	"os"

	"github.com/CommunityWatch/CW-Backend/internal/db"
)

// Services bundles the boundary set, store, and resolver for the handlers.
type Services struct {
	Boundaries *BoundarySet
	Store      *Store
	Resolver   *Resolver
}

// Service is the active jurisdiction service. Initialized in Init().
var Service *Services

func Init() {
	if err := db.EnsureSchema(db.DB, "jurisdiction"); err != nil {
		log.Fatal("Failed to ensure schema jurisdiction: ", err)
	}

	if err := db.DB.AutoMigrate(
		&GisEntry{},
		&FilingInfo{},
		&FilingRevision{},
		&EditorFeedback{},
	); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	path := os.Getenv("BOUNDARY_GEOJSON")
	if path == "" {
		log.Fatal("BOUNDARY_GEOJSON is empty")
	}

	boundaries, err := LoadBoundaries(path)
	if err != nil {
		log.Fatal("Failed to load boundary dataset: ", err)
	}
	log.Printf("[jurisdiction] loaded %d boundary features from %s", boundaries.Len(), path)

	store := NewStore(db.DB)
	Service = &Services{
		Boundaries: boundaries,
		Store:      store,
		Resolver:   &Resolver{Boundaries: boundaries, Store: store},
	}
}
