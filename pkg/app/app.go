// Package app provides the question operations shared by the CLI and the
// interactive UI.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/deck/pkg/form"
	"tableflip.dev/deck/pkg/question"
	"tableflip.dev/deck/pkg/search"
	"tableflip.dev/deck/pkg/store"
)

// Service wraps the store so UIs and CLIs can share logic.
type Service struct {
	Store *store.Store
	Log   *zap.Logger
	// LoadErr is set when the saved snapshot could not be read or parsed
	// and the service started empty.
	LoadErr error
}

var errNoStore = errors.New("app: no store configured")

// Open creates the slot described by cfg, loads it and returns a Service.
// An unreadable or malformed snapshot is logged and recorded in LoadErr;
// the service still opens with an empty list.
func Open(cfg store.Config, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}
	slot, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	s := &Service{Store: store.New(slot, store.WithLogger(log)), Log: log}
	if err := s.Store.Load(); err != nil {
		if !errors.Is(err, store.ErrMalformed) && !errors.Is(err, store.ErrUnreadable) {
			_ = slot.Close()
			return nil, err
		}
		log.Warn("starting with an empty list", zap.Error(err))
		s.LoadErr = err
	}
	return s, nil
}

// Close releases the store.
func (s *Service) Close() error {
	if s.Store == nil {
		return nil
	}
	return s.Store.Close()
}

// Questions lists every question in insertion order.
func (s *Service) Questions(_ context.Context) ([]question.Question, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.All(), nil
}

// ByTag lists questions carrying tag, compared case-insensitively. An empty
// tag lists everything.
func (s *Service) ByTag(ctx context.Context, tag string) ([]question.Question, error) {
	all, err := s.Questions(ctx)
	if err != nil {
		return nil, err
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return all, nil
	}
	out := make([]question.Question, 0, len(all))
	for _, q := range all {
		for _, t := range q.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, q)
				break
			}
		}
	}
	return out, nil
}

// Tags returns every distinct tag, sorted.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	all, err := s.Questions(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	tags := []string{}
	for _, q := range all {
		for _, t := range q.Tags {
			if !seen[strings.ToLower(t)] {
				seen[strings.ToLower(t)] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// Search runs a title search over the current list.
func (s *Service) Search(ctx context.Context, query string) (search.Result, error) {
	all, err := s.Questions(ctx)
	if err != nil {
		return search.Result{}, err
	}
	return search.Search(query, all), nil
}

// Find resolves ref as an id first, then as a case-insensitive title. The
// first title match in insertion order wins.
func (s *Service) Find(_ context.Context, ref string) (question.Question, error) {
	if s.Store == nil {
		return question.Question{}, errNoStore
	}
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if q, ok := s.Store.Get(id); ok {
			return q, nil
		}
	}
	for _, q := range s.Store.All() {
		if strings.EqualFold(q.Title, ref) {
			return q, nil
		}
	}
	return question.Question{}, fmt.Errorf("%w: %q", store.ErrNotFound, ref)
}

// Add validates f and stores a new question.
func (s *Service) Add(_ context.Context, f question.Fields) (question.Question, error) {
	if s.Store == nil {
		return question.Question{}, errNoStore
	}
	return form.New(s.Store, s.Log).SubmitNew(f)
}

// Patch names the fields an edit changes. Nil fields keep their value.
type Patch struct {
	Title       *string
	Content     *string
	Explanation *string
	CodeSnippet *string
	Tags        *string
}

// Apply overlays p onto f.
func (p Patch) Apply(f question.Fields) question.Fields {
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Content != nil {
		f.Content = *p.Content
	}
	if p.Explanation != nil {
		f.Explanation = *p.Explanation
	}
	if p.CodeSnippet != nil {
		f.CodeSnippet = *p.CodeSnippet
	}
	if p.Tags != nil {
		f.Tags = *p.Tags
	}
	return f
}

// Edit replaces the question with the given id by its current fields
// overlaid with p.
func (s *Service) Edit(_ context.Context, id int64, p Patch) (question.Question, error) {
	if s.Store == nil {
		return question.Question{}, errNoStore
	}
	current, ok := s.Store.Get(id)
	if !ok {
		return question.Question{}, fmt.Errorf("%w: %d", store.ErrNotFound, id)
	}
	c := form.New(s.Store, s.Log)
	c.OpenForEdit(current)
	c.SetFields(p.Apply(c.Fields()))
	return c.Submit()
}

// Delete removes the question with the given id once confirm agrees. A nil
// confirm deletes without asking.
func (s *Service) Delete(_ context.Context, id int64, confirm form.Confirm) (bool, error) {
	if s.Store == nil {
		return false, errNoStore
	}
	if _, ok := s.Store.Get(id); !ok {
		return false, fmt.Errorf("%w: %d", store.ErrNotFound, id)
	}
	if confirm == nil {
		confirm = func(question.Question) bool { return true }
	}
	return form.New(s.Store, s.Log).Delete(id, confirm)
}

// Watch streams change events for the backing slot.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Watch(ctx)
}

// FormatID renders an id the way the CLI accepts it back.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
