package jurisdiction

import (
	"sort"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// SearchOption is a {value, label} pair the jurisdiction pickers consume.
type SearchOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var foldCaser = cases.Fold()

// normalizeName case-folds a jurisdiction name for matching, so "McKees
// Rocks" matches "mckees rocks".
func normalizeName(name string) string {
	return foldCaser.String(name)
}

const maxSearchResults = 5

// SearchIndex searches the GIS index by name. An empty query returns every
// jurisdiction sorted by label; otherwise the top fuzzy matches in match
// order. The excluded ID (if any) is filtered out — the editor uses it to
// keep a jurisdiction from deferring to itself.
func SearchIndex(index map[string]GisInfo, query, exclude string) []SearchOption {
	entries := make([]SearchOption, 0, len(index))
	for id, info := range index {
		if id == exclude {
			continue
		}
		entries = append(entries, SearchOption{Value: id, Label: info.Name})
	}

	if query == "" {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Label < entries[j].Label
		})
		return entries
	}

	// Stable input order so equally-ranked matches don't shuffle between
	// requests.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Value < entries[j].Value
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = normalizeName(e.Label)
	}

	matches := fuzzy.Find(normalizeName(query), names)
	results := make([]SearchOption, 0, maxSearchResults)
	for _, m := range matches {
		results = append(results, entries[m.Index])
		if len(results) == maxSearchResults {
			break
		}
	}
	return results
}
