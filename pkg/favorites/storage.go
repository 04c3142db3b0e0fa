package favorites

import (
	"context"
	"time"
)

// Storage is the key-value persistence used by Store. Implementations are
// scoped to a single client.
type Storage interface {
	// Get returns the stored value and whether it exists and has not expired.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Clear(ctx context.Context, key string) error
}

type scopedStorage struct {
	storage Storage
	prefix  string
}

// Scope namespaces a shared server-side storage to one client, e.g. a session.
func Scope(storage Storage, scope string) Storage {
	return &scopedStorage{storage: storage, prefix: scope + ":"}
}

func (s *scopedStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return s.storage.Get(ctx, s.prefix+key)
}

func (s *scopedStorage) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return s.storage.Set(ctx, s.prefix+key, value, ttl)
}

func (s *scopedStorage) Clear(ctx context.Context, key string) error {
	return s.storage.Clear(ctx, s.prefix+key)
}
