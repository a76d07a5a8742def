package store

import (
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvSlot stores the slot as a single diskv key.
type DiskvSlot struct {
	d        *diskv.Diskv
	basePath string
	key      string
}

// NewDiskvSlot returns a slot named key under basePath.
func NewDiskvSlot(basePath, key string) *DiskvSlot {
	return &DiskvSlot{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			TempDir:   filepath.Join(basePath, ".tmp"),
			Transform: flatTransform,
			// No read cache: other processes write the same file.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		key:      key,
	}
}

func (s *DiskvSlot) Read() ([]byte, error) {
	if !s.d.Has(s.key) {
		return nil, nil
	}
	return s.d.Read(s.key)
}

func (s *DiskvSlot) Write(data []byte) error {
	return s.d.Write(s.key, data)
}

func (s *DiskvSlot) Location() string {
	return filepath.Join(s.basePath, s.key)
}

func (s *DiskvSlot) Close() error {
	return nil
}

func flatTransform(string) []string {
	return []string{}
}
