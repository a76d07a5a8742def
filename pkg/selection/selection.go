// Package selection tracks the search box, its suggestion list and which
// question the grid is showing.
package selection

import (
	"tableflip.dev/deck/pkg/question"
	"tableflip.dev/deck/pkg/search"
)

// Mode is the navigation state.
type Mode int

const (
	// Idle: no suggestion list visible; the grid shows the filtered list.
	Idle Mode = iota
	// Suggesting: suggestions visible with zero or one active item.
	Suggesting
	// Detail: the grid shows a single question.
	Detail
)

func (m Mode) String() string {
	switch m {
	case Suggesting:
		return "suggesting"
	case Detail:
		return "detail"
	default:
		return "idle"
	}
}

// NoneActive is the active index when no suggestion is highlighted.
const NoneActive = -1

// State is the navigation state machine. The zero value is not ready; use
// New.
type State struct {
	mode        Mode
	query       string
	suggestions []question.Question
	active      int
	detailID    int64
}

// New returns an Idle state with an empty query.
func New() *State {
	return &State{mode: Idle, active: NoneActive}
}

// Mode is the current state.
func (s *State) Mode() Mode { return s.mode }

// Query is the search box text.
func (s *State) Query() string { return s.query }

// Suggestions is the visible suggestion list; empty unless Suggesting.
func (s *State) Suggestions() []question.Question { return s.suggestions }

// Active is the highlighted suggestion index or NoneActive.
func (s *State) Active() int { return s.active }

// DetailID is the question shown in Detail mode.
func (s *State) DetailID() (int64, bool) {
	return s.detailID, s.mode == Detail
}

// ShowBack reports whether the back affordance is visible.
func (s *State) ShowBack() bool { return s.mode == Detail }

// Type records new search box text and recomputes suggestions. Typing always
// leaves Detail.
func (s *State) Type(query string, corpus []question.Question) {
	s.query = query
	s.active = NoneActive
	s.detailID = 0

	r := search.Search(query, corpus)
	if r.ShowAll || len(r.Matches) == 0 {
		s.mode = Idle
		s.suggestions = nil
		return
	}
	s.mode = Suggesting
	s.suggestions = r.Matches
}

// Down advances the active suggestion, stopping at the last one.
func (s *State) Down() {
	if s.mode != Suggesting {
		return
	}
	if s.active < len(s.suggestions)-1 {
		s.active++
	}
}

// Up moves the active suggestion back, stopping at the first one.
func (s *State) Up() {
	if s.mode != Suggesting {
		return
	}
	if s.active > 0 {
		s.active--
	}
}

// Confirm resolves the active suggestion, or the first one when none is
// active. It reports the resolved question; false means nothing happened.
func (s *State) Confirm() (question.Question, bool) {
	if s.mode != Suggesting || len(s.suggestions) == 0 {
		return question.Question{}, false
	}
	i := s.active
	if i < 0 || i >= len(s.suggestions) {
		i = 0
	}
	return s.resolve(s.suggestions[i]), true
}

// Pick resolves suggestion i directly, as a click would.
func (s *State) Pick(i int) (question.Question, bool) {
	if s.mode != Suggesting || i < 0 || i >= len(s.suggestions) {
		return question.Question{}, false
	}
	return s.resolve(s.suggestions[i]), true
}

// Open shows q in Detail, as activating its grid card does.
func (s *State) Open(q question.Question) {
	s.resolve(q)
}

// Back leaves Detail for the full grid and clears the query.
func (s *State) Back() bool {
	if s.mode != Detail {
		return false
	}
	s.reset()
	return true
}

// Visible returns what the grid shows: the detail question, or the corpus
// filtered by the query. A detail question that no longer exists drops the
// state back to Idle.
func (s *State) Visible(corpus []question.Question) []question.Question {
	if s.mode == Detail {
		for _, q := range corpus {
			if q.ID == s.detailID {
				return []question.Question{q}
			}
		}
		s.reset()
		return corpus
	}
	return search.Filter(s.query, corpus)
}

// Refresh recomputes suggestions after the corpus changed, keeping the
// active item when it is still present.
func (s *State) Refresh(corpus []question.Question) {
	if s.mode != Suggesting {
		return
	}
	var activeID int64
	hadActive := s.active >= 0 && s.active < len(s.suggestions)
	if hadActive {
		activeID = s.suggestions[s.active].ID
	}
	s.Type(s.query, corpus)
	if !hadActive {
		return
	}
	for i, q := range s.suggestions {
		if q.ID == activeID {
			s.active = i
			return
		}
	}
}

func (s *State) resolve(q question.Question) question.Question {
	s.mode = Detail
	s.detailID = q.ID
	s.query = q.Title
	s.suggestions = nil
	s.active = NoneActive
	return q
}

func (s *State) reset() {
	s.mode = Idle
	s.query = ""
	s.suggestions = nil
	s.active = NoneActive
	s.detailID = 0
}
