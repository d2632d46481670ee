package store

import (
	"sync"

	"simpletools/pkg/logging"
)

// UserStore provides thread-safe in-memory storage of per-user key-value
// tables. Tables are created lazily on first store and live for the process
// lifetime; nothing is persisted.
//
// A single lock guards the whole mapping. Call rates are tiny (one mutation
// per tool call) so per-user locks would buy nothing.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]map[string]string
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]map[string]string),
	}
}

// Put inserts or overwrites the entry for key in the user's table, creating
// the table if this is the user's first store.
func (s *UserStore) Put(userID, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, exists := s.users[userID]
	if !exists {
		table = make(map[string]string)
		s.users[userID] = table
	}
	table[key] = value
	logging.Debug("Store", "Stored key %q for user %s (%d entries)", key, userID, len(table))
}

// Get retrieves the value for key from the user's table. The second return
// is false when the user has no table or the key is absent.
func (s *UserStore) Get(userID, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, exists := s.users[userID]
	if !exists {
		return "", false
	}
	value, ok := table[key]
	return value, ok
}

// Snapshot returns a copy of the user's table. Mutating the returned map
// does not affect the store. A user with no table yields an empty map.
func (s *UserStore) Snapshot(userID string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table := s.users[userID]
	snapshot := make(map[string]string, len(table))
	for k, v := range table {
		snapshot[k] = v
	}
	return snapshot
}

// Count returns the number of entries in the user's table.
func (s *UserStore) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users[userID])
}
