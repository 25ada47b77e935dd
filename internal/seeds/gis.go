package seeds

import (
	"fmt"
	"log"
	"os"

	"github.com/CommunityWatch/CW-Backend/internal/db"
	"github.com/CommunityWatch/CW-Backend/internal/jurisdiction"
	"github.com/goccy/go-yaml"
	"gorm.io/gorm"
)

// gisManifest is the YAML seed file: the authoritative id → display-name list
// for the GIS index. The boundary dataset carries geometry; this carries the
// names the app shows.
type gisManifest struct {
	Jurisdictions []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"jurisdictions"`
}

func SeedGisIndex() error {
	manifestPath := os.Getenv("GIS_SEED_FILE")
	if manifestPath == "" {
		manifestPath = "internal/seeds/data/gis_index.yaml"
	}

	file, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", manifestPath, err)
	}

	var manifest gisManifest
	if err := yaml.Unmarshal(file, &manifest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}

	// Cross-check against the boundary dataset so the index never names a
	// jurisdiction the resolver can't find, or vice versa.
	boundaryIDs := map[string]bool{}
	if path := os.Getenv("BOUNDARY_GEOJSON"); path != "" {
		boundaries, err := jurisdiction.LoadBoundaries(path)
		if err != nil {
			return fmt.Errorf("failed to load boundary dataset: %w", err)
		}
		for _, id := range boundaries.IDs() {
			boundaryIDs[id] = true
		}
	}

	seeded := 0
	for _, entry := range manifest.Jurisdictions {
		if entry.ID == "" || entry.Name == "" {
			return fmt.Errorf("manifest entry missing id or name: %+v", entry)
		}
		if len(boundaryIDs) > 0 && !boundaryIDs[entry.ID] {
			log.Printf("⚠️ No boundary feature for %s (%s)", entry.ID, entry.Name)
		}

		var existing jurisdiction.GisEntry
		err := db.DB.First(&existing, "id = ?", entry.ID).Error
		if err == nil {
			log.Printf("⚠️ GIS entry exists, skipping: %s", entry.ID)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("DB error on entry %s: %w", entry.ID, err)
		}

		if err := db.DB.Create(&jurisdiction.GisEntry{ID: entry.ID, Name: entry.Name}).Error; err != nil {
			return fmt.Errorf("failed to create GIS entry %s: %w", entry.ID, err)
		}
		seeded++
	}

	log.Printf("✅ Seeded %d GIS entries", seeded)
	return nil
}
