// Package store owns the authoritative question list and keeps it in sync
// with a durable slot.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"tableflip.dev/deck/pkg/question"
)

var (
	// ErrNotFound is returned by lookups for an id that is not stored.
	ErrNotFound = errors.New("store: question not found")
	// ErrDuplicateID is returned by Add when the id is already in use.
	ErrDuplicateID = errors.New("store: duplicate question id")
	// ErrMalformed wraps snapshot parse failures from Load.
	ErrMalformed = errors.New("store: malformed snapshot")
	// ErrUnreadable wraps slot read failures from Load and Reload.
	ErrUnreadable = errors.New("store: unreadable snapshot")
)

// Store holds questions in insertion order. Every mutation is followed by a
// Save so the slot mirrors memory once the call returns.
type Store struct {
	slot      Slot
	log       *zap.Logger
	now       func() time.Time
	questions []question.Question
	digest    uint64
	hasDigest bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report load and save problems.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source used to allocate ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns an empty Store backed by slot. Call Load to read the snapshot.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{
		slot:      slot,
		log:       zap.NewNop(),
		now:       time.Now,
		questions: []question.Question{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory list with the slot snapshot. A missing
// snapshot leaves the list empty. An unreadable or malformed one is logged,
// leaves the list empty and is returned so the caller can mention it; the
// Store stays usable.
func (s *Store) Load() error {
	s.questions = []question.Question{}

	data, err := s.slot.Read()
	if err != nil {
		s.log.Error("read questions", zap.String("location", s.slot.Location()), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	s.remember(data)
	if data == nil {
		s.log.Debug("no saved questions", zap.String("location", s.slot.Location()))
		return nil
	}

	qs, err := question.UnmarshalList(data)
	if err != nil {
		s.log.Error("parse questions", zap.String("location", s.slot.Location()), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	s.questions = qs
	s.log.Debug("questions loaded", zap.Int("count", len(qs)))
	return nil
}

// Reload re-reads the slot when its content differs from what this Store
// last read or wrote. It reports whether the list was replaced.
func (s *Store) Reload() (bool, error) {
	data, err := s.slot.Read()
	if err != nil {
		s.log.Error("read questions", zap.String("location", s.slot.Location()), zap.Error(err))
		return false, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if s.hasDigest && xxhash.Sum64(data) == s.digest {
		return false, nil
	}
	return true, s.Load()
}

// Save writes the full list to the slot. Failures are logged and returned;
// memory stays the source of truth until the next successful write.
func (s *Store) Save() error {
	data, err := question.MarshalList(s.questions)
	if err != nil {
		s.log.Error("encode questions", zap.Error(err))
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	if err := s.slot.Write(data); err != nil {
		s.log.Error("save questions", zap.String("location", s.slot.Location()), zap.Error(err))
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	s.remember(data)
	s.log.Debug("questions saved", zap.Int("count", len(s.questions)))
	return nil
}

// Add appends q and saves. The caller validates the fields and allocates the
// id with NextID.
func (s *Store) Add(q question.Question) error {
	if _, ok := s.index(q.ID); ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, q.ID)
	}
	q = q.Clone()
	s.questions = append(s.questions, q)
	return s.Save()
}

// Update replaces every field of the question with the given id, keeping
// the id and its position. It reports false, without saving, when no
// question matches.
func (s *Store) Update(id int64, q question.Question) (bool, error) {
	i, ok := s.index(id)
	if !ok {
		return false, nil
	}
	q = q.Clone()
	q.ID = id
	s.questions[i] = q
	return true, s.Save()
}

// Remove deletes the first question with the given id. It reports false,
// without saving, when no question matches.
func (s *Store) Remove(id int64) (bool, error) {
	i, ok := s.index(id)
	if !ok {
		return false, nil
	}
	s.questions = append(s.questions[:i], s.questions[i+1:]...)
	return true, s.Save()
}

// Get returns a copy of the question with the given id.
func (s *Store) Get(id int64) (question.Question, bool) {
	i, ok := s.index(id)
	if !ok {
		return question.Question{}, false
	}
	return s.questions[i].Clone(), true
}

// All returns a copy of every question in insertion order.
func (s *Store) All() []question.Question {
	out := make([]question.Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.Clone()
	}
	return out
}

// Len is the number of stored questions.
func (s *Store) Len() int {
	return len(s.questions)
}

// NextID allocates a timestamp-like id that is larger than every stored id,
// so two questions created within the same millisecond never collide.
func (s *Store) NextID() int64 {
	id := s.now().UnixMilli()
	for _, q := range s.questions {
		if q.ID >= id {
			id = q.ID + 1
		}
	}
	return id
}

// Location is where the snapshot lives.
func (s *Store) Location() string {
	return s.slot.Location()
}

// Watch streams change events for the backing slot.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	return Watch(ctx, s.slot)
}

// Close releases the slot.
func (s *Store) Close() error {
	return s.slot.Close()
}

func (s *Store) index(id int64) (int, bool) {
	for i, q := range s.questions {
		if q.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) remember(data []byte) {
	s.digest = xxhash.Sum64(data)
	s.hasDigest = true
}
