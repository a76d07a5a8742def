package search

import (
	"testing"

	"tableflip.dev/deck/pkg/question"
)

func corpus() []question.Question {
	return []question.Question{
		{ID: 1, Title: "Binary Search", Tags: []string{"algorithms"}},
		{ID: 2, Title: "Binary Tree", Tags: []string{"ds"}},
		{ID: 3, Title: "Hash Map internals"},
	}
}

func ids(qs []question.Question) []int64 {
	out := make([]int64, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := map[string]struct {
		query string
		want  []int64
	}{
		"both binaries in order": {query: "binary", want: []int64{1, 2}},
		"case insensitive":       {query: "BiNaRy", want: []int64{1, 2}},
		"only tree":              {query: "tree", want: []int64{2}},
		"substring mid title":    {query: "map int", want: []int64{3}},
		"no match":               {query: "xyz", want: []int64{}},
		"whitespace is literal":  {query: " ", want: []int64{1, 2, 3}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := Search(tc.query, corpus())
			if r.ShowAll {
				t.Fatalf("non-empty query must not signal show-all")
			}
			got := ids(r.Matches)
			if len(got) != len(tc.want) {
				t.Fatalf("Search(%q) = %v, want %v", tc.query, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Search(%q) = %v, want %v", tc.query, got, tc.want)
				}
			}
		})
	}
}

func TestSearchEmptyQuerySignalsShowAll(t *testing.T) {
	r := Search("", corpus())
	if !r.ShowAll {
		t.Fatalf("expected show-all signal")
	}
	if r.Empty() {
		t.Fatalf("show-all is not an empty match set")
	}

	none := Search("xyz", corpus())
	if !none.Empty() || none.ShowAll {
		t.Fatalf("expected empty result distinct from show-all, got %#v", none)
	}
}

func TestSearchIsExactSubset(t *testing.T) {
	c := corpus()
	for _, query := range []string{"a", "bin", "search", "e", "Hash"} {
		r := Search(query, c)
		seen := make(map[int64]bool)
		for _, q := range r.Matches {
			seen[q.ID] = true
		}
		for _, q := range c {
			if Matches(q, query) != seen[q.ID] {
				t.Fatalf("query %q: question %d membership mismatch", query, q.ID)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	if got := Filter("", corpus()); len(got) != 3 {
		t.Fatalf("expected all questions, got %d", len(got))
	}
	if got := Filter("tree", corpus()); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only tree, got %v", ids(got))
	}
}
