package favorites

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const StorageKey contextKey = "favorites-storage"

var ErrNoStorage = errors.New("favorites storage not found")

// CurrentStorage returns the client-scoped storage attached by the session middleware.
func CurrentStorage(ctx context.Context) (Storage, error) {
	storage, ok := ctx.Value(StorageKey).(Storage)
	if !ok || storage == nil {
		log.Trace("favorites storage not found in context")
		return nil, ErrNoStorage
	}
	return storage, nil
}

func WithStorage(ctx context.Context, storage Storage) context.Context {
	return context.WithValue(ctx, StorageKey, storage)
}
