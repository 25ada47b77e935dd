package jurisdiction

import (
	"context"
	"errors"
	"fmt"
)

// ErrDeferralCycle reports a defer chain that never reaches a non-deferring
// record. This is a data-integrity violation: the traversal refuses to spin
// and surfaces it as a fatal condition instead.
var ErrDeferralCycle = errors.New("jurisdiction deferral cycle detected")

// ResolverStore is the slice of Store the resolver needs.
type ResolverStore interface {
	GisIndex(ctx context.Context) (map[string]GisInfo, error)
	GetFilingInfo(ctx context.Context, id string) (*FilingInfo, error)
}

// Resolution pairs where the point landed with who actually handles it:
// JurisdictionID and Gis describe the matched jurisdiction, Filing is the
// record at the end of any deferral chain. Filing is nil when no record has
// been created for the resolved authority yet.
type Resolution struct {
	JurisdictionID string      `json:"id"`
	Gis            *GisInfo    `json:"gis"`
	Filing         *FilingInfo `json:"filing"`
}

// Resolver maps a coordinate to the jurisdiction responsible for receiving a
// complaint there.
type Resolver struct {
	Boundaries *BoundarySet
	Store      ResolverStore
}

// Resolve tests the point against every boundary, then follows the defer
// chain from the matched jurisdiction to the filing authority.
//
// A coordinate outside every boundary returns (nil, nil) — no match is a
// normal outcome. When boundaries overlap, the first feature in dataset
// order wins; callers must not read meaning into that tie-break (see
// DESIGN.md).
func (r *Resolver) Resolve(ctx context.Context, lat, lon float64) (*Resolution, error) {
	matches := r.Boundaries.Containing(lat, lon)
	if len(matches) == 0 {
		return nil, nil
	}
	matchedID := matches[0]

	index, err := r.Store.GisIndex(ctx)
	if err != nil {
		return nil, err
	}

	filing, err := r.Store.GetFilingInfo(ctx, matchedID)
	if err != nil {
		return nil, err
	}

	// Follow defer pointers. The chain cannot legitimately be longer than
	// the number of known jurisdictions; anything past that is a cycle.
	maxChain := len(index) + 1
	for steps := 0; filing != nil && filing.DeferTo != nil && *filing.DeferTo != ""; steps++ {
		if steps >= maxChain {
			return nil, fmt.Errorf("resolving %s: %w", matchedID, ErrDeferralCycle)
		}
		filing, err = r.Store.GetFilingInfo(ctx, *filing.DeferTo)
		if err != nil {
			return nil, err
		}
	}

	resolution := &Resolution{
		JurisdictionID: matchedID,
		Filing:         filing,
	}
	if gis, ok := index[matchedID]; ok {
		resolution.Gis = &gis
	}
	return resolution, nil
}
