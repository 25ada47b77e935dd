package jurisdiction

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// jurisdictionIDProperty is the GeoJSON feature property carrying the
// jurisdiction identifier in the boundary dataset.
const jurisdictionIDProperty = "JURISDICTION_ID"

type boundaryFeature struct {
	JurisdictionID string
	Geometry       orb.Geometry
}

// BoundarySet holds the static jurisdiction boundary polygons, loaded once at
// startup and never mutated. Feature order is dataset order.
type BoundarySet struct {
	features []boundaryFeature
}

// LoadBoundaries reads a GeoJSON FeatureCollection of Polygon/MultiPolygon
// features tagged with JURISDICTION_ID. Features with other geometry types or
// a missing ID are skipped.
func LoadBoundaries(path string) (*BoundarySet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundary dataset: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("parse boundary dataset: %w", err)
	}

	set := &BoundarySet{}
	for _, f := range fc.Features {
		id, _ := f.Properties[jurisdictionIDProperty].(string)
		if id == "" {
			continue
		}
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
			set.features = append(set.features, boundaryFeature{
				JurisdictionID: id,
				Geometry:       f.Geometry,
			})
		}
	}

	return set, nil
}

// Len returns the number of boundary features in the set.
func (s *BoundarySet) Len() int {
	return len(s.features)
}

// IDs returns every jurisdiction ID in the set, in dataset order.
// Overlapping datasets may repeat an ID.
func (s *BoundarySet) IDs() []string {
	ids := make([]string, len(s.features))
	for i, f := range s.features {
		ids[i] = f.JurisdictionID
	}
	return ids
}

// Containing returns the IDs of every jurisdiction whose boundary contains
// the coordinate, in dataset order. An out-of-bounds coordinate yields an
// empty result, never an error.
//
// Containment uses orb's planar ray-casting test. A point exactly on a
// boundary edge counts as inside for some edges and outside for others
// depending on edge direction; callers must treat on-edge results as
// implementation-defined.
func (s *BoundarySet) Containing(lat, lon float64) []string {
	point := orb.Point{lon, lat}

	var ids []string
	for _, f := range s.features {
		var hit bool
		switch geom := f.Geometry.(type) {
		case orb.Polygon:
			hit = planar.PolygonContains(geom, point)
		case orb.MultiPolygon:
			hit = planar.MultiPolygonContains(geom, point)
		}
		if hit {
			ids = append(ids, f.JurisdictionID)
		}
	}
	return ids
}
