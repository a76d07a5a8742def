package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// BackendDiskv keeps the slot as a file inside a diskv directory.
	BackendDiskv = "diskv"
	// BackendSQLite keeps the slot as a row in a SQLite database.
	BackendSQLite = "sqlite"

	// DefaultSlotKey names the slot holding the question list.
	DefaultSlotKey = "questions"

	sqliteFileName = "deck.sqlite"
)

// Slot is one named durable location holding the whole serialised question
// list.
type Slot interface {
	// Read returns the stored bytes, or nil with no error when nothing has
	// been written yet.
	Read() ([]byte, error)
	Write(data []byte) error
	// Location is the file whose changes signal a new snapshot.
	Location() string
	Close() error
}

// Config describes where and how the slot is stored.
type Config interface {
	BasePath() string
	Backend() string
	SlotKey() string
}

// Open creates the Slot selected by cfg.
func Open(cfg Config) (Slot, error) {
	if cfg == nil {
		return nil, fmt.Errorf("store: no config")
	}
	base := strings.TrimSpace(cfg.BasePath())
	if base == "" {
		return nil, fmt.Errorf("store: base path unknown")
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	key := strings.TrimSpace(cfg.SlotKey())
	if key == "" {
		key = DefaultSlotKey
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Backend())) {
	case "", BackendDiskv:
		return NewDiskvSlot(base, key), nil
	case BackendSQLite:
		path := filepath.Join(base, sqliteFileName)
		slot, err := OpenSQLiteSlot(path, key)
		if err != nil {
			return &unavailableSlot{location: path, err: err}, nil
		}
		return slot, nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}

// unavailableSlot stands in for a database that could not be set up, so the
// failure surfaces from Load like any other unreadable snapshot.
type unavailableSlot struct {
	location string
	err      error
}

func (s *unavailableSlot) Read() ([]byte, error)  { return nil, s.err }
func (s *unavailableSlot) Write(data []byte) error { return s.err }
func (s *unavailableSlot) Location() string        { return s.location }
func (s *unavailableSlot) Close() error            { return nil }
