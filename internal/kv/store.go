package kv

import (
	"errors"
	"sync"
)

// ErrQuotaExceeded is returned by Set when the backend refuses the write
// because the store is full. The previous value for the key is retained.
var ErrQuotaExceeded = errors.New("kv: quota exceeded")

// Store abstracts the key-value persistence backend. Keys and values are
// strings; values are JSON documents produced by the persist layer.
// All operations are synchronous and complete before returning.
type Store interface {
	// Get returns the value for key, reporting whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value. A failed
	// Set leaves the previous value intact.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}

// MemoryStore is a thread-safe map store for tests and ephemeral sessions.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]string
	limit int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// NewBoundedMemoryStore caps the total byte size of stored values so quota
// failure paths can be exercised without a real backend filling up.
func NewBoundedMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{data: make(map[string]string), limit: limit}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.limit > 0 {
		total := len(value)
		for k, v := range s.data {
			if k == key {
				continue
			}
			total += len(v)
		}
		if total > s.limit {
			return ErrQuotaExceeded
		}
	}
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Iterable is implemented by backends that can enumerate their contents.
// Backup and restore require it; the engines themselves never iterate.
type Iterable interface {
	Range(fn func(key, value string) error) error
	// ReplaceAll drops every key and loads the provided snapshot.
	ReplaceAll(all map[string]string) error
}

func (s *MemoryStore) Range(fn func(key, value string) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, v := range s.data {
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) ReplaceAll(all map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string, len(all))
	for k, v := range all {
		s.data[k] = v
	}
	return nil
}
