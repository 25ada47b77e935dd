package jurisdiction_test

import (
	"reflect"
	"testing"

	"github.com/CommunityWatch/CW-Backend/internal/jurisdiction"
)

var searchIndex = map[string]jurisdiction.GisInfo{
	"pgh":              {Name: "Pittsburgh"},
	"mckees-rocks":     {Name: "McKees Rocks"},
	"stowe":            {Name: "Stowe Township"},
	"bellevue":         {Name: "Bellevue"},
	"avalon":           {Name: "Avalon"},
	"allegheny-county": {Name: "Allegheny County"},
}

func labels(opts []jurisdiction.SearchOption) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

func TestSearchIndex_EmptyQueryListsAllSorted(t *testing.T) {
	got := labels(jurisdiction.SearchIndex(searchIndex, "", ""))

	want := []string{
		"Allegheny County", "Avalon", "Bellevue",
		"McKees Rocks", "Pittsburgh", "Stowe Township",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("empty query = %v, want %v", got, want)
	}
}

func TestSearchIndex_FuzzyMatchIgnoresCase(t *testing.T) {
	got := jurisdiction.SearchIndex(searchIndex, "MCKEES", "")
	if len(got) == 0 || got[0].Value != "mckees-rocks" {
		t.Errorf("query MCKEES = %+v, want mckees-rocks first", got)
	}
}

func TestSearchIndex_PartialMatch(t *testing.T) {
	got := jurisdiction.SearchIndex(searchIndex, "pitt", "")
	if len(got) != 1 || got[0].Value != "pgh" {
		t.Errorf("query pitt = %+v, want only pgh", got)
	}
}

func TestSearchIndex_ExcludeFiltersID(t *testing.T) {
	got := jurisdiction.SearchIndex(searchIndex, "", "pgh")
	for _, o := range got {
		if o.Value == "pgh" {
			t.Fatal("excluded ID present in results")
		}
	}
	if len(got) != len(searchIndex)-1 {
		t.Errorf("got %d results, want %d", len(got), len(searchIndex)-1)
	}
}

func TestSearchIndex_NoMatchReturnsEmpty(t *testing.T) {
	got := jurisdiction.SearchIndex(searchIndex, "zzzzzz", "")
	if len(got) != 0 {
		t.Errorf("query zzzzzz = %+v, want empty", got)
	}
}

func TestSearchIndex_CapsResults(t *testing.T) {
	index := map[string]jurisdiction.GisInfo{
		"w1": {Name: "Ward One"},
		"w2": {Name: "Ward Two"},
		"w3": {Name: "Ward Three"},
		"w4": {Name: "Ward Four"},
		"w5": {Name: "Ward Five"},
		"w6": {Name: "Ward Six"},
		"w7": {Name: "Ward Seven"},
	}

	got := jurisdiction.SearchIndex(index, "ward", "")
	if len(got) != 5 {
		t.Errorf("got %d results, want the 5-result cap", len(got))
	}
}

func TestSearchIndex_StableOrderAcrossCalls(t *testing.T) {
	first := jurisdiction.SearchIndex(searchIndex, "e", "")
	for i := 0; i < 10; i++ {
		again := jurisdiction.SearchIndex(searchIndex, "e", "")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("result order changed between calls: %v vs %v", first, again)
		}
	}
}
