package jurisdiction

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotFound reports a target jurisdiction missing from the GIS index.
	ErrNotFound = errors.New("jurisdiction not found")

	// ErrValidation reports a payload that fails a pipeline check. Nothing
	// has been written when this is returned.
	ErrValidation = errors.New("invalid filing info payload")
)

// DeferOption is the {value, label} pair the editor submits for the defer
// field. Only the value is stored; the label is display-side convenience.
type DeferOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DocumentUpdate is the submitted form of a document entry. Verified is an
// editor-side flag that is stripped before storage.
type DocumentUpdate struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Verified bool   `json:"verified"`
}

// FilingUpdate is the typed request payload for the update pipeline.
type FilingUpdate struct {
	Methods   []MethodInfo     `json:"methods"`
	Documents []DocumentUpdate `json:"documents"`
	Defer     *DeferOption     `json:"defer"`
}

const maxFreeTextLen = 2000

// validateUpdate runs every check that must pass before any write happens.
func (s *Store) validateUpdate(ctx context.Context, id string, update FilingUpdate) error {
	exists, err := s.JurisdictionExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if update.Defer != nil && update.Defer.Value != "" {
		if update.Defer.Value == id {
			return ErrValidation
		}
		deferExists, err := s.JurisdictionExists(ctx, update.Defer.Value)
		if err != nil {
			return err
		}
		if !deferExists {
			return ErrValidation
		}
	}

	for _, m := range update.Methods {
		if strings.TrimSpace(m.Method) == "" {
			return ErrValidation
		}
		if len(m.Notes) > maxFreeTextLen {
			return ErrValidation
		}
	}
	return nil
}

// cleanUpdate applies the cleaning rules: document entries without a URL are
// dropped, method values are trimmed and emptied entries dropped, free text
// is trimmed. Order of surviving entries is preserved.
func cleanUpdate(update FilingUpdate) ([]MethodInfo, []DocumentInfo) {
	documents := make([]DocumentInfo, 0, len(update.Documents))
	for _, d := range update.Documents {
		url := strings.TrimSpace(d.URL)
		if url == "" {
			continue
		}
		documents = append(documents, DocumentInfo{
			Name: strings.TrimSpace(d.Name),
			URL:  url,
		})
	}

	methods := make([]MethodInfo, 0, len(update.Methods))
	for _, m := range update.Methods {
		values := make([]string, 0, len(m.Values))
		for _, v := range m.Values {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			values = append(values, v)
		}

		accepts := make([]string, 0, len(m.Accepts))
		for _, a := range m.Accepts {
			a = strings.TrimSpace(a)
			if a == "" {
				continue
			}
			accepts = append(accepts, a)
		}

		methods = append(methods, MethodInfo{
			Method:  strings.TrimSpace(m.Method),
			Values:  values,
			Notes:   strings.TrimSpace(m.Notes),
			Accepts: accepts,
		})
	}

	return methods, documents
}

// archiveAndWrite issues the revision append and the document overwrite
// together and waits for both. Either failure fails the operation; there is
// deliberately no rollback of a partial archive — recovery is operational.
func (s *Store) archiveAndWrite(ctx context.Context, existing *FilingInfo, next *FilingInfo) error {
	g, gctx := errgroup.WithContext(ctx)

	if existing != nil {
		rev := snapshot(existing)
		g.Go(func() error {
			return s.AppendRevision(gctx, rev)
		})
	}
	g.Go(func() error {
		return s.SaveFilingInfo(gctx, next)
	})

	return g.Wait()
}

// UpdateFilingInfo applies an authenticated edit to a jurisdiction's filing
// record, archiving the previous contents first. All validation happens
// before any mutation.
func (s *Store) UpdateFilingInfo(ctx context.Context, id string, update FilingUpdate) error {
	if err := s.validateUpdate(ctx, id, update); err != nil {
		return err
	}

	existing, err := s.GetFilingInfo(ctx, id)
	if err != nil {
		return err
	}

	methods, documents := cleanUpdate(update)

	next := &FilingInfo{
		JurisdictionID: id,
		LastUpdated:    time.Now(),
		Methods:        methods,
		Documents:      documents,
	}
	if update.Defer != nil && update.Defer.Value != "" {
		deferTo := update.Defer.Value
		next.DeferTo = &deferTo
	}

	return s.archiveAndWrite(ctx, existing, next)
}

// SetDefer updates only the defer pointer. An empty deferTo clears it. When
// no filing record exists yet, a fresh one is created with empty methods and
// documents.
func (s *Store) SetDefer(ctx context.Context, id string, deferTo string) error {
	exists, err := s.JurisdictionExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if deferTo != "" {
		if deferTo == id {
			return ErrValidation
		}
		deferExists, err := s.JurisdictionExists(ctx, deferTo)
		if err != nil {
			return err
		}
		if !deferExists {
			return ErrValidation
		}
	}

	existing, err := s.GetFilingInfo(ctx, id)
	if err != nil {
		return err
	}

	next := &FilingInfo{
		JurisdictionID: id,
		LastUpdated:    time.Now(),
		Methods:        []MethodInfo{},
		Documents:      []DocumentInfo{},
	}
	if existing != nil {
		// Keep everything but the defer pointer and timestamp.
		next.Methods = existing.Methods
		next.Documents = existing.Documents
	}
	if deferTo != "" {
		next.DeferTo = &deferTo
	}

	return s.archiveAndWrite(ctx, existing, next)
}
