// Package jsonstore is the persistence layer: one JSON document per resource
// kind, loaded and rewritten whole. Record counts are expected to stay small;
// a full-document write always wins over a concurrent one (no merge). The
// per-document lock only serializes read-modify-write cycles within this
// process.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store is the document abstraction the repositories are built on. Load
// decodes the named document into v, leaving v untouched if the document does
// not exist yet. Save rewrites the whole document. Lock acquires the
// per-document mutex and returns the unlock func; callers hold it across a
// read-modify-write cycle.
type Store interface {
	Load(doc string, v any) error
	Save(doc string, v any) error
	Lock(doc string) func()
}

// FileStore keeps each document as <doc>.json under a data directory.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *FileStore) path(doc string) string {
	return filepath.Join(s.dir, doc+".json")
}

func (s *FileStore) Load(doc string, v any) error {
	data, err := os.ReadFile(s.path(doc))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", doc, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", doc, err)
	}
	return nil
}

func (s *FileStore) Save(doc string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", doc, err)
	}
	if err := os.WriteFile(s.path(doc), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", doc, err)
	}
	return nil
}

func (s *FileStore) Lock(doc string) func() {
	s.mu.Lock()
	m, ok := s.locks[doc]
	if !ok {
		m = &sync.Mutex{}
		s.locks[doc] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
