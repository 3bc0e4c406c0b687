package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore : backend en mémoire pour les tests, même contrat que Redis
type MemoryStore struct {
	mu        sync.Mutex
	data      map[string][]byte
	published map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:      make(map[string][]byte),
		published: make(map[string][]string),
	}
}

func (s *MemoryStore) GetJSON(_ context.Context, key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) SetJSON(_ context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Publish(_ context.Context, channel, payload string) error {
	s.mu.Lock()
	s.published[channel] = append(s.published[channel], payload)
	s.mu.Unlock()
	return nil
}

// Published retourne les payloads publiés sur un canal (pour les tests)
func (s *MemoryStore) Published(channel string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.published[channel]...)
}

// SetRaw écrit un blob brut, utile pour tester la réhydratation d'un
// contenu corrompu
func (s *MemoryStore) SetRaw(key string, data []byte) {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), data...)
	s.mu.Unlock()
}
