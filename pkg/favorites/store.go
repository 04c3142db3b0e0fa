package favorites

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultKey       = "favorites"
	DefaultOrderKey  = "favoritesOrder"
	DefaultRetention = 365 * 24 * time.Hour
)

type Options struct {
	// Key holds the ids in the order they were added.
	Key string
	// OrderKey holds the display order, only while it differs from Key.
	OrderKey  string
	Retention time.Duration
	// Persist disables all storage access when false; Load then starts empty.
	Persist bool
	// Known drops ids on load that no longer exist. Nil keeps every id.
	Known func(id string) bool
}

func DefaultOptions() Options {
	return Options{
		Key:       DefaultKey,
		OrderKey:  DefaultOrderKey,
		Retention: DefaultRetention,
		Persist:   true,
	}
}

func (o Options) withDefaults() Options {
	if o.Key == "" {
		o.Key = DefaultKey
	}
	if o.OrderKey == "" {
		o.OrderKey = o.Key + "Order"
	}
	if o.Retention <= 0 {
		o.Retention = DefaultRetention
	}
	return o
}

// Store owns one client's ordered favorites and writes them to Storage after
// every mutation. A Store is not safe for concurrent use; the HTTP layer
// creates one per request.
type Store struct {
	storage Storage
	opts    Options
	added   []string
	order   []string
}

func NewStore(storage Storage, opts Options) *Store {
	return &Store{storage: storage, opts: opts.withDefaults()}
}

// Load replaces the in-memory state with the persisted one. Missing or
// unreadable data yields an empty set.
func (s *Store) Load(ctx context.Context) Set {
	s.added, s.order = nil, nil
	if !s.persistent() {
		return s.snapshot()
	}

	added := s.readList(ctx, s.opts.Key)
	if s.opts.Known != nil {
		added = slices.DeleteFunc(added, func(id string) bool {
			if s.opts.Known(id) {
				return false
			}
			log.Debugf("dropping unknown id %q from %s", id, s.opts.Key)
			return true
		})
	}
	s.added = added
	s.order = reconcile(added, s.readList(ctx, s.opts.OrderKey))
	return s.snapshot()
}

// Toggle adds id at the end when absent and removes it when present.
func (s *Store) Toggle(ctx context.Context, id string) Set {
	if id == "" {
		return s.snapshot()
	}
	if idx := slices.Index(s.added, id); idx >= 0 {
		s.added = slices.Delete(s.added, idx, idx+1)
		if orderIdx := slices.Index(s.order, id); orderIdx >= 0 {
			s.order = slices.Delete(s.order, orderIdx, orderIdx+1)
		}
	} else {
		s.added = append(s.added, id)
		s.order = append(s.order, id)
	}
	s.persist(ctx)
	return s.snapshot()
}

// Reorder swaps the display positions of a and b. Unknown or equal ids leave
// the set untouched.
func (s *Store) Reorder(ctx context.Context, a, b string) Set {
	ia, ib := slices.Index(s.order, a), slices.Index(s.order, b)
	if ia < 0 || ib < 0 || ia == ib {
		return s.snapshot()
	}
	s.order[ia], s.order[ib] = s.order[ib], s.order[ia]
	s.persist(ctx)
	return s.snapshot()
}

// Clear removes every id.
func (s *Store) Clear(ctx context.Context) Set {
	s.added, s.order = nil, nil
	s.persist(ctx)
	return s.snapshot()
}

// List returns the ids in display order.
func (s *Store) List() []string {
	return s.snapshot().IDs()
}

func (s *Store) snapshot() Set {
	return Set{ids: slices.Clone(s.order)}
}

func (s *Store) persistent() bool {
	return s.opts.Persist && s.storage != nil
}

func (s *Store) persist(ctx context.Context) {
	if !s.persistent() {
		return
	}
	if len(s.added) == 0 {
		s.clearKey(ctx, s.opts.Key)
	} else {
		s.writeList(ctx, s.opts.Key, s.added)
	}
	if slices.Equal(s.added, s.order) {
		s.clearKey(ctx, s.opts.OrderKey)
	} else {
		s.writeList(ctx, s.opts.OrderKey, s.order)
	}
}

func (s *Store) readList(ctx context.Context, key string) []string {
	raw, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		log.Warnf("failed to read %s, treating as empty: %v", key, err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Warnf("corrupt %s payload, treating as empty: %v", key, err)
		return nil
	}
	return dedupe(ids)
}

func (s *Store) writeList(ctx context.Context, key string, ids []string) {
	payload, err := json.Marshal(ids)
	if err != nil {
		log.Errorf("failed to encode %s: %v", key, err)
		return
	}
	if err := s.storage.Set(ctx, key, string(payload), s.opts.Retention); err != nil {
		log.Errorf("failed to persist %s: %v", key, err)
	}
}

func (s *Store) clearKey(ctx context.Context, key string) {
	if err := s.storage.Clear(ctx, key); err != nil {
		log.Errorf("failed to clear %s: %v", key, err)
	}
}

// reconcile returns the display order: ids of order that are still in added,
// followed by anything in added the order does not mention yet.
func reconcile(added, order []string) []string {
	result := make([]string, 0, len(added))
	for _, id := range order {
		if slices.Contains(added, id) && !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	for _, id := range added {
		if !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	return result
}
