package favorites

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/utils"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// sweepInterval bounds how often Set scans for expired entries.
const sweepInterval = time.Minute

// MemoryStorage keeps values in process memory. State is lost on restart.
// Expired entries are dropped when read and swept on writes.
type MemoryStorage struct {
	mu        sync.Mutex
	clock     utils.Clock
	entries   map[string]memoryEntry
	nextSweep time.Time
}

func NewMemoryStorage(clock utils.Clock) *MemoryStorage {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &MemoryStorage{clock: clock, entries: make(map[string]memoryEntry)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	if entry.expired(m.clock.Now()) {
		delete(m.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryStorage) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}
	m.entries[key] = entry

	if !now.Before(m.nextSweep) {
		m.sweep(now)
		m.nextSweep = now.Add(sweepInterval)
	}
	return nil
}

func (m *MemoryStorage) sweep(now time.Time) {
	removed := 0
	for key, entry := range m.entries {
		if entry.expired(now) {
			delete(m.entries, key)
			removed++
		}
	}
	if removed > 0 {
		log.Debugf("removed %d expired favorites entries from memory", removed)
	}
}

func (m *MemoryStorage) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored keys, including expired ones not yet removed.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
