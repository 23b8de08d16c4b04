package i18n

import (
	"context"
	"sync"
)

// PreferenceKey is the name the chosen language is persisted under
const PreferenceKey = "language"

// PreferenceStore persists the chosen language between sessions.
// GetPreference returns an error when nothing is stored.
type PreferenceStore interface {
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
}

// MemoryStore is a PreferenceStore that lives as long as the process
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// GetPreference implements PreferenceStore
func (s *MemoryStore) GetPreference(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", errNoPreference
	}
	return v, nil
}

// SetPreference implements PreferenceStore
func (s *MemoryStore) SetPreference(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
