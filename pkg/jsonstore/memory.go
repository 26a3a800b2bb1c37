package jsonstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store used by tests. Documents are kept as
// marshaled JSON so Load/Save have the same copy semantics as the file store.
type MemStore struct {
	mu    sync.Mutex
	docs  map[string][]byte
	locks map[string]*sync.Mutex
}

func NewMemStore() *MemStore {
	return &MemStore{
		docs:  make(map[string][]byte),
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *MemStore) Load(doc string, v any) error {
	s.mu.Lock()
	data, ok := s.docs[doc]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", doc, err)
	}
	return nil
}

func (s *MemStore) Save(doc string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", doc, err)
	}
	s.mu.Lock()
	s.docs[doc] = data
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Lock(doc string) func() {
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
