package adminsession

import "sync"

// Hint keys mirror the ephemeral per-tab storage of the admin UI.
const (
	HintAuthenticatedKey = "adminAuthenticated"
	HintSessionIDKey     = "adminSessionId"
)

// HintStore is the ephemeral, non-authoritative cache of auth status.
// It only accelerates the first paint; the remote check always wins.
type HintStore interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Delete(key string)
}

// MemoryHintStore is a tab-lifetime HintStore.
type MemoryHintStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryHintStore() *MemoryHintStore {
	return &MemoryHintStore{values: make(map[string]string)}
}

func (s *MemoryHintStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryHintStore) Set(key string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryHintStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
