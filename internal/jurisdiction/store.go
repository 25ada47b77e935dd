package jurisdiction

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const gisIndexCacheKey = "gis_index"

// Store is the database access layer for jurisdiction data. The GIS index is
// read on nearly every request, so it sits behind a short-lived in-memory
// cache; entries only change at seeding time.
type Store struct {
	DB    *gorm.DB
	cache *gocache.Cache
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		DB:    db,
		cache: gocache.New(time.Minute, 5*time.Minute),
	}
}

// GisIndex returns the full id → GisInfo lookup index.
func (s *Store) GisIndex(ctx context.Context) (map[string]GisInfo, error) {
	if cached, ok := s.cache.Get(gisIndexCacheKey); ok {
		return cached.(map[string]GisInfo), nil
	}

	var entries []GisEntry
	if err := s.DB.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("load gis index: %w", err)
	}

	index := make(map[string]GisInfo, len(entries))
	for _, e := range entries {
		index[e.ID] = GisInfo{Name: e.Name}
	}

	s.cache.SetDefault(gisIndexCacheKey, index)
	return index, nil
}

// JurisdictionExists reports whether an ID is present in the GIS index.
func (s *Store) JurisdictionExists(ctx context.Context, id string) (bool, error) {
	index, err := s.GisIndex(ctx)
	if err != nil {
		return false, err
	}
	_, ok := index[id]
	return ok, nil
}

// GetFilingInfo returns a jurisdiction's filing record, or nil when none has
// been created yet. Absence is a normal outcome, not an error.
func (s *Store) GetFilingInfo(ctx context.Context, id string) (*FilingInfo, error) {
	var info FilingInfo
	err := s.DB.WithContext(ctx).First(&info, "jurisdiction_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load filing info %s: %w", id, err)
	}
	return &info, nil
}

// SaveFilingInfo overwrites (or creates) a jurisdiction's filing record.
func (s *Store) SaveFilingInfo(ctx context.Context, info *FilingInfo) error {
	if err := s.DB.WithContext(ctx).Save(info).Error; err != nil {
		return fmt.Errorf("save filing info %s: %w", info.JurisdictionID, err)
	}
	return nil
}

// AppendRevision appends a snapshot to a jurisdiction's revision history.
func (s *Store) AppendRevision(ctx context.Context, rev FilingRevision) error {
	if err := s.DB.WithContext(ctx).Create(&rev).Error; err != nil {
		return fmt.Errorf("append revision for %s: %w", rev.JurisdictionID, err)
	}
	return nil
}

// Revisions returns a jurisdiction's revision history, oldest first.
func (s *Store) Revisions(ctx context.Context, id string) ([]FilingRevision, error) {
	var revs []FilingRevision
	err := s.DB.WithContext(ctx).
		Where("jurisdiction_id = ?", id).
		Order("archived_at ASC").
		Find(&revs).Error
	if err != nil {
		return nil, fmt.Errorf("load revisions for %s: %w", id, err)
	}
	return revs, nil
}

// CreateFeedback stores an editor feedback note.
func (s *Store) CreateFeedback(ctx context.Context, fb *EditorFeedback) error {
	if err := s.DB.WithContext(ctx).Create(fb).Error; err != nil {
		return fmt.Errorf("store feedback: %w", err)
	}
	return nil
}
