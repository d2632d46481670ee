package creds

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long a resolved credential is served from memory
// before the backend is consulted again.
const DefaultCacheTTL = time.Minute

type cacheEntry struct {
	credentials Credentials
	fetchedAt   time.Time
}

// CachingStore wraps a Store with a TTL cache and request deduplication.
// The per-call authentication gate hits the store on every tool call, so
// without this a burst of calls would hammer the backend; with it,
// concurrent lookups for the same user collapse into one backend request.
// Only successful lookups are cached; misses go to the backend every time
// so a freshly saved key is visible without waiting out a negative entry.
type CachingStore struct {
	backend Store
	ttl     time.Duration

	mu    sync.RWMutex
	cache map[string]*cacheEntry

	group singleflight.Group
}

// NewCachingStore wraps backend with a cache. A non-positive ttl selects
// DefaultCacheTTL.
func NewCachingStore(backend Store, ttl time.Duration) *CachingStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachingStore{
		backend: backend,
		ttl:     ttl,
		cache:   make(map[string]*cacheEntry),
	}
}

func cacheKey(service, userID string) string {
	return service + "/" + userID
}

// Get returns cached credentials when fresh, otherwise fetches from the
// backend. Concurrent cache misses for the same (service, user) pair share
// a single backend call.
func (s *CachingStore) Get(ctx context.Context, service, userID string) (Credentials, error) {
	key := cacheKey(service, userID)

	if credentials, ok := s.cached(key); ok {
		return credentials, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Double-check: a concurrent flight may have refreshed the entry
		// between our miss and winning the flight.
		if credentials, ok := s.cached(key); ok {
			return credentials, nil
		}

		credentials, err := s.backend.Get(ctx, service, userID)
		if err != nil {
			return Credentials{}, err
		}

		s.mu.Lock()
		s.cache[key] = &cacheEntry{credentials: credentials, fetchedAt: time.Now()}
		s.mu.Unlock()

		return credentials, nil
	})
	if err != nil {
		return Credentials{}, err
	}

	return result.(Credentials), nil
}

// Save writes through to the backend and replaces the cached entry so a
// subsequent Get sees the new key immediately.
func (s *CachingStore) Save(ctx context.Context, service, userID string, credentials Credentials) error {
	if err := s.backend.Save(ctx, service, userID, credentials); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[cacheKey(service, userID)] = &cacheEntry{credentials: credentials, fetchedAt: time.Now()}
	s.mu.Unlock()

	return nil
}

// Invalidate drops every cached entry. The credential watcher calls this
// when files under a local store change on disk.
func (s *CachingStore) Invalidate() {
	s.mu.Lock()
	s.cache = make(map[string]*cacheEntry)
	s.mu.Unlock()
}

func (s *CachingStore) cached(key string) (Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[key]
	if !ok || time.Since(entry.fetchedAt) >= s.ttl {
		return Credentials{}, false
	}
	return entry.credentials, true
}
