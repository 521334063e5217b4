package cache

import (
	"sync"

	"deepfloor/internal/gamemap"
)

// MemStore keeps floors in process memory.
type MemStore struct {
	mu     sync.Mutex
	floors map[gamemap.Coord][]byte
	meta   map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{
		floors: make(map[gamemap.Coord][]byte),
		meta:   make(map[string][]byte),
	}
}

func (s *MemStore) Put(c gamemap.Coord, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floors[c] = append([]byte(nil), data...)
	return nil
}

func (s *MemStore) Get(c gamemap.Coord) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.floors[c]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *MemStore) Delete(c gamemap.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.floors, c)
	return nil
}

func (s *MemStore) Keys() ([]gamemap.Coord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]gamemap.Coord, 0, len(s.floors))
	for c := range s.floors {
		keys = append(keys, c)
	}
	return keys, nil
}

func (s *MemStore) PutMeta(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta[key] = append([]byte(nil), data...)
	return nil
}

func (s *MemStore) GetMeta(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.meta[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *MemStore) DeleteMeta(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.meta, key)
	return nil
}

func (s *MemStore) Close() error { return nil }
