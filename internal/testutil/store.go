package testutil

import (
	"context"
	"errors"
	"sync"
)

// ErrInjected is the default error returned by FailingStore.
var ErrInjected = errors.New("injected store failure")

// MemoryStore is a map-backed document store that counts writes.
type MemoryStore struct {
	mu     sync.Mutex
	data   map[string]string
	writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

func (s *MemoryStore) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.data[key]
	return body, ok, nil
}

func (s *MemoryStore) Write(_ context.Context, key, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = body
	s.writes++
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Writes reports how many Write calls succeeded.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Put seeds a raw body without counting it as a write.
func (s *MemoryStore) Put(key, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = body
}

// FailingStore wraps a MemoryStore and fails writes while FailWrites is set.
type FailingStore struct {
	*MemoryStore
	mu         sync.Mutex
	failWrites bool
	failReads  bool
	Err        error
}

func NewFailingStore() *FailingStore {
	return &FailingStore{MemoryStore: NewMemoryStore(), Err: ErrInjected}
}

func (s *FailingStore) FailWrites(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = on
}

func (s *FailingStore) FailReads(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failReads = on
}

func (s *FailingStore) Read(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	fail := s.failReads
	s.mu.Unlock()
	if fail {
		return "", false, s.Err
	}
	return s.MemoryStore.Read(ctx, key)
}

func (s *FailingStore) Write(ctx context.Context, key, body string) error {
	s.mu.Lock()
	fail := s.failWrites
	s.mu.Unlock()
	if fail {
		return s.Err
	}
	return s.MemoryStore.Write(ctx, key, body)
}

func (s *FailingStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	fail := s.failWrites
	s.mu.Unlock()
	if fail {
		return s.Err
	}
	return s.MemoryStore.Remove(ctx, key)
}
