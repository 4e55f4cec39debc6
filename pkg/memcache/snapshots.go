// pkg/memcache/snapshots.go
package mem

import (
	"context"
	"sync"
	"time"
)

// SnapshotStore keeps the last-known-good copy of a list per view session.
// It is read only when a fresh fetch failed; it never short-circuits a fetch.
type SnapshotStore interface {
	Set(key string, value any, ttl time.Duration)

	// Get returns the value for key if present and not expired.
	Get(key string) (any, bool)

	Delete(key string)

	// Sweep drops every entry expired at now and returns how many were removed.
	Sweep(now time.Time) int
}

type entry struct {
	value     any
	expiresAt time.Time
}

type Snapshots struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewSnapshots() *Snapshots {
	return &Snapshots{
		data: make(map[string]entry),
	}
}

func (s *Snapshots) Set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Snapshots) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (s *Snapshots) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *Snapshots) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

func (s *Snapshots) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// RunJanitor sweeps expired snapshots every interval until ctx is done.
func RunJanitor(ctx context.Context, store SnapshotStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			store.Sweep(now)
		}
	}
}
