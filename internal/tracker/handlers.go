package tracker

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/CommunityWatch/CW-Backend/internal/utils"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// recordRequest is the typed submission payload. Server-assigned fields
// (id, author, timestamps) are not accepted from the client.
type recordRequest struct {
	When         string           `json:"when"`
	Jurisdiction JurisdictionRef  `json:"jurisdiction"`
	Category     string           `json:"category"`
	Status       string           `json:"status"`
	Details      string           `json:"details"`
	Updates      []RecordUpdate   `json:"updates"`
	Resolution   RecordResolution `json:"resolution"`
}

const maxDetailsLen = 5000

func (req *recordRequest) validate() bool {
	if strings.TrimSpace(req.When) == "" ||
		strings.TrimSpace(req.Jurisdiction.Value) == "" ||
		strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.Status) == "" {
		return false
	}
	if len(req.Details) > maxDetailsLen {
		return false
	}
	if req.Resolution.Satisfaction < 0 || req.Resolution.Satisfaction > 5 {
		return false
	}
	return true
}

// CreateRecordHandler stores a new complaint record for the authenticated
// account. The jurisdiction must exist in the GIS index.
func CreateRecordHandler(w http.ResponseWriter, r *http.Request) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}
	if !req.validate() {
		http.Error(w, "Invalid record", http.StatusBadRequest)
		return
	}

	exists, err := Service.Checker.JurisdictionExists(r.Context(), req.Jurisdiction.Value)
	if err != nil {
		log.Printf("[CreateRecordHandler] jurisdiction check failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "Unknown jurisdiction", http.StatusBadRequest)
		return
	}

	now := time.Now()
	record := ComplaintRecord{
		ID:           uuid.New(),
		AuthorID:     accountID,
		DateCreated:  now,
		LastModified: now,
		OccurredOn:   req.When,
		Jurisdiction: req.Jurisdiction,
		Category:     strings.TrimSpace(req.Category),
		Status:       strings.TrimSpace(req.Status),
		Details:      strings.TrimSpace(req.Details),
		Updates:      req.Updates,
		Resolution:   req.Resolution,
	}
	if record.Updates == nil {
		record.Updates = []RecordUpdate{}
	}

	if err := Service.DB.WithContext(r.Context()).Create(&record).Error; err != nil {
		log.Printf("[CreateRecordHandler] create failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, record.ID)
}

// ListRecordsHandler returns every complaint record for public browsing.
func ListRecordsHandler(w http.ResponseWriter, r *http.Request) {
	var records []ComplaintRecord
	err := Service.DB.WithContext(r.Context()).
		Order("date_created DESC").
		Find(&records).Error
	if err != nil {
		log.Printf("[ListRecordsHandler] query failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, records)
}

// StatsHandler returns complaint counts grouped by category and month, the
// aggregate the tracker charts render. ?categories=a,b limits the grouping.
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	var categories []string
	if raw := r.URL.Query().Get("categories"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	stats, err := AggregateCounts(r.Context(), categories)
	if err != nil {
		log.Printf("[StatsHandler] aggregate failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats)
}
