package jurisdiction

import (
	"time"

	"github.com/google/uuid"
)

// GisEntry is the display identity for a jurisdiction. Seeded once from the
// boundary dataset and read-only afterwards.
type GisEntry struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// GisInfo is the lookup-index view of a GisEntry.
type GisInfo struct {
	Name string `json:"name"`
}

// MethodInfo describes one way to file a complaint with a jurisdiction
// (e.g. phone, mail, online form).
type MethodInfo struct {
	Method  string   `json:"method"`
	Values  []string `json:"values"`
	Notes   string   `json:"notes"`
	Accepts []string `json:"accepts"`
}

// DocumentInfo is a supporting document link for a jurisdiction.
type DocumentInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FilingInfo is the mutable per-jurisdiction filing record. DeferTo, when
// set, names another jurisdiction whose filing info is authoritative for
// this one. It must reference an existing jurisdiction and never this one.
type FilingInfo struct {
	JurisdictionID string         `gorm:"primaryKey" json:"-"`
	LastUpdated    time.Time      `gorm:"not null" json:"last_updated"`
	DeferTo        *string        `gorm:"column:defer_to" json:"defer,omitempty"`
	Methods        []MethodInfo   `gorm:"type:jsonb;serializer:json" json:"methods"`
	Documents      []DocumentInfo `gorm:"type:jsonb;serializer:json" json:"documents"`
}

// FilingRevision is an immutable snapshot of a FilingInfo captured
// immediately before an overwrite. Append-only; nothing here ever mutates
// or deletes a revision.
type FilingRevision struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	JurisdictionID string         `gorm:"index;not null" json:"jurisdiction_id"`
	ArchivedAt     time.Time      `gorm:"not null" json:"archived_at"`
	LastUpdated    time.Time      `json:"last_updated"`
	DeferTo        *string        `gorm:"column:defer_to" json:"defer,omitempty"`
	Methods        []MethodInfo   `gorm:"type:jsonb;serializer:json" json:"methods"`
	Documents      []DocumentInfo `gorm:"type:jsonb;serializer:json" json:"documents"`
}

// EditorFeedback is a free-form note submitted from the filing-info editor.
type EditorFeedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
	Category    string    `json:"category"`
	Message     string    `gorm:"not null" json:"message"`
}

func (GisEntry) TableName() string       { return "jurisdiction.gis_entries" }
func (FilingInfo) TableName() string     { return "jurisdiction.filing_infos" }
func (FilingRevision) TableName() string { return "jurisdiction.filing_revisions" }
func (EditorFeedback) TableName() string { return "jurisdiction.editor_feedback" }

// snapshot copies a FilingInfo verbatim into a new revision row.
func snapshot(info *FilingInfo) FilingRevision {
	return FilingRevision{
		ID:             uuid.New(),
		JurisdictionID: info.JurisdictionID,
		ArchivedAt:     time.Now(),
		LastUpdated:    info.LastUpdated,
		DeferTo:        info.DeferTo,
		Methods:        info.Methods,
		Documents:      info.Documents,
	}
}
