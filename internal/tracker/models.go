package tracker

import (
	"time"

	"github.com/google/uuid"
)

// JurisdictionRef is the {value, label} pair the record form submits for the
// jurisdiction picker. The value is the jurisdiction ID; the label is the
// display name at submission time.
type JurisdictionRef struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// RecordUpdate is a dated follow-up note on a complaint record.
type RecordUpdate struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

// RecordResolution captures how (and how satisfactorily) a complaint ended.
type RecordResolution struct {
	Date         string `json:"date,omitempty"`
	Details      string `json:"details,omitempty"`
	Satisfaction int    `json:"satisfaction"`
}

// ComplaintRecord is a user-submitted misconduct report. Records are
// immutable once created; there is no edit or delete path.
type ComplaintRecord struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID     string           `gorm:"index;not null" json:"authorId"`
	DateCreated  time.Time        `gorm:"not null" json:"dateCreated"`
	LastModified time.Time        `gorm:"not null" json:"lastModified"`
	OccurredOn   string           `gorm:"column:occurred_on" json:"when"`
	Jurisdiction JurisdictionRef  `gorm:"embedded;embeddedPrefix:jurisdiction_" json:"jurisdiction"`
	Category     string           `gorm:"index;not null" json:"category"`
	Status       string           `gorm:"not null" json:"status"`
	Details      string           `json:"details"`
	Updates      []RecordUpdate   `gorm:"type:jsonb;serializer:json" json:"updates"`
	Resolution   RecordResolution `gorm:"type:jsonb;serializer:json" json:"resolution"`
}

func (ComplaintRecord) TableName() string { return "tracker.complaint_records" }
