package jurisdiction

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// ResolveHandler maps ?lat=&lon= to the jurisdiction responsible for
// complaints at that coordinate. A coordinate outside every boundary answers
// 200 with a JSON null body, matching what the map frontend expects.
func ResolveHandler(w http.ResponseWriter, r *http.Request) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" || lonStr == "" {
		http.Error(w, "Missing lat or lon parameter", http.StatusBadRequest)
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		http.Error(w, "Invalid lat or lon parameter", http.StatusBadRequest)
		return
	}

	resolution, err := Service.Resolver.Resolve(r.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, ErrDeferralCycle) {
			// Data-integrity violation, not a user error. Log loudly so it
			// gets fixed instead of silently worked around.
			log.Printf("[ResolveHandler] INTEGRITY: %v (lat=%f lon=%f)", err, lat, lon)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		log.Printf("[ResolveHandler] resolve failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if resolution == nil {
		writeJSON(w, nil)
		return
	}
	writeJSON(w, resolution)
}

// GisIndexHandler returns the full jurisdiction id → {name} index.
func GisIndexHandler(w http.ResponseWriter, r *http.Request) {
	index, err := Service.Store.GisIndex(r.Context())
	if err != nil {
		log.Printf("[GisIndexHandler] load failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(index) == 0 {
		http.Error(w, "GIS index is empty", http.StatusNotFound)
		return
	}
	writeJSON(w, index)
}

// filingInfoView is FilingInfo with the defer pointer expanded to the
// {value, label} option shape the editor renders.
type filingInfoView struct {
	LastUpdated time.Time      `json:"last_updated"`
	Defer       *DeferOption   `json:"defer,omitempty"`
	Methods     []MethodInfo   `json:"methods"`
	Documents   []DocumentInfo `json:"documents"`
}

type infoResponse struct {
	GisInfo    GisInfo         `json:"gisInfo"`
	FilingInfo *filingInfoView `json:"filingInfo"`
}

// InfoHandler returns one jurisdiction's GIS info and filing record.
func InfoHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	index, err := Service.Store.GisIndex(r.Context())
	if err != nil {
		log.Printf("[InfoHandler] load index failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	gis, ok := index[id]
	if !ok {
		http.Error(w, "Jurisdiction not found", http.StatusNotFound)
		return
	}

	info, err := Service.Store.GetFilingInfo(r.Context(), id)
	if err != nil {
		log.Printf("[InfoHandler] load filing info failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := infoResponse{GisInfo: gis}
	if info != nil {
		view := &filingInfoView{
			LastUpdated: info.LastUpdated,
			Methods:     info.Methods,
			Documents:   info.Documents,
		}
		if info.DeferTo != nil && *info.DeferTo != "" {
			label := "Unknown"
			if deferGis, ok := index[*info.DeferTo]; ok {
				label = deferGis.Name
			}
			view.Defer = &DeferOption{Value: *info.DeferTo, Label: label}
		}
		response.FilingInfo = view
	}

	writeJSON(w, response)
}

func writeFilingError(w http.ResponseWriter, tag string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "Jurisdiction not found", http.StatusNotFound)
	case errors.Is(err, ErrValidation):
		http.Error(w, "Invalid payload", http.StatusBadRequest)
	default:
		log.Printf("[%s] update failed: %v", tag, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// UpdateInfoHandler applies an edit to a jurisdiction's filing info,
// archiving the previous contents.
func UpdateInfoHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	var update FilingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	if err := Service.Store.UpdateFilingInfo(r.Context(), id, update); err != nil {
		writeFilingError(w, "UpdateInfoHandler", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// UpdateDeferHandler sets or clears only the defer pointer. The body is a
// bare JSON string naming the deferred-to jurisdiction ("" clears).
func UpdateDeferHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	var deferTo string
	if err := json.NewDecoder(r.Body).Decode(&deferTo); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	if err := Service.Store.SetDefer(r.Context(), id, deferTo); err != nil {
		writeFilingError(w, "UpdateDeferHandler", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// SearchHandler fuzzy-searches jurisdictions by name.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	exclude := r.URL.Query().Get("exclude")

	index, err := Service.Store.GisIndex(r.Context())
	if err != nil {
		log.Printf("[SearchHandler] load index failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, SearchIndex(index, query, exclude))
}

type feedbackRequest struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// FeedbackHandler stores a note submitted from the filing-info editor.
func FeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" || len(message) > maxFreeTextLen || strings.ContainsRune(message, '\x00') {
		http.Error(w, "Invalid feedback", http.StatusBadRequest)
		return
	}

	fb := EditorFeedback{
		ID:          uuid.New(),
		SubmittedAt: time.Now(),
		Category:    strings.TrimSpace(req.Category),
		Message:     message,
	}
	if err := Service.Store.CreateFeedback(r.Context(), &fb); err != nil {
		log.Printf("[FeedbackHandler] store failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
