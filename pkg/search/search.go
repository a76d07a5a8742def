// Package search matches questions against a title query.
package search

import (
	"strings"

	"tableflip.dev/deck/pkg/question"
)

// Result is the outcome of a search. ShowAll is set for an empty query: the
// grid shows every question and suggestions are hidden. It is distinct from
// a non-empty query with no Matches.
type Result struct {
	ShowAll bool
	Matches []question.Question
}

// Empty reports whether a non-empty query matched nothing.
func (r Result) Empty() bool {
	return !r.ShowAll && len(r.Matches) == 0
}

// Search returns the questions whose lower-cased title contains the
// lower-cased query, in corpus order.
func Search(query string, corpus []question.Question) Result {
	if query == "" {
		return Result{ShowAll: true}
	}
	matches := make([]question.Question, 0)
	for _, q := range corpus {
		if Matches(q, query) {
			matches = append(matches, q)
		}
	}
	return Result{Matches: matches}
}

// Matches is the predicate shared by suggestions and grid filtering.
func Matches(q question.Question, query string) bool {
	return strings.Contains(strings.ToLower(q.Title), strings.ToLower(query))
}

// Filter returns the grid contents for query: everything for an empty query,
// otherwise the matches.
func Filter(query string, corpus []question.Question) []question.Question {
	r := Search(query, corpus)
	if r.ShowAll {
		return corpus
	}
	return r.Matches
}
