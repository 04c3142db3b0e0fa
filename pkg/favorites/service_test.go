package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weekendguide/berlin/internal/event_bus"
)

func knownIDs(ids ...string) func(string) bool {
	return func(id string) bool {
		for _, known := range ids {
			if id == known {
				return true
			}
		}
		return false
	}
}

func setupService(t *testing.T) (*ServiceImpl, context.Context, *[]event_bus.SetChanged) {
	t.Helper()
	bus := event_bus.NewEventBus()
	var received []event_bus.SetChanged
	event_bus.SubscribeTyped(bus, event_bus.FavoritesChangedEvent, func(e event_bus.EventT[event_bus.SetChanged]) error {
		received = append(received, e.Data)
		return nil
	})

	opts := DefaultOptions()
	opts.Known = knownIDs("museum_0", "museum_1", "restaurant_0")
	service := NewService(opts, bus, event_bus.FavoritesChangedEvent)
	return service, WithStorage(context.Background(), NewMemoryStorage(nil)), &received
}

func TestService_Toggle(t *testing.T) {
	t.Run("should add and remove with events", func(t *testing.T) {
		// given
		service, ctx, received := setupService(t)

		// when
		_, err := service.Toggle(ctx, "museum_0")
		require.NoError(t, err)
		set, err := service.Toggle(ctx, "museum_0")
		require.NoError(t, err)

		// then
		assert.True(t, set.IsEmpty())
		require.Len(t, *received, 2)
		assert.Equal(t, event_bus.ActionAdded, (*received)[0].Action)
		assert.Equal(t, []string{"museum_0"}, (*received)[0].Current)
		assert.Equal(t, event_bus.ActionRemoved, (*received)[1].Action)
		assert.Empty(t, (*received)[1].Current)
	})

	t.Run("should reject unknown item", func(t *testing.T) {
		service, ctx, received := setupService(t)

		_, err := service.Toggle(ctx, "museum_42")

		assert.ErrorIs(t, err, ErrUnknownItem)
		assert.Empty(t, *received)
	})

	t.Run("should fail without storage in context", func(t *testing.T) {
		service, _, _ := setupService(t)

		_, err := service.Toggle(context.Background(), "museum_0")

		assert.ErrorIs(t, err, ErrNoStorage)
	})
}

func TestService_ReorderAndClear(t *testing.T) {
	// given
	service, ctx, received := setupService(t)
	for _, id := range []string{"museum_0", "museum_1", "restaurant_0"} {
		_, err := service.Toggle(ctx, id)
		require.NoError(t, err)
	}

	// when
	set, err := service.Reorder(ctx, "restaurant_0", "museum_0")
	require.NoError(t, err)

	// then
	assert.Equal(t, []string{"restaurant_0", "museum_1", "museum_0"}, set.IDs())
	listed, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, set.IDs(), listed.IDs())

	t.Run("should not publish for a no-op reorder", func(t *testing.T) {
		before := len(*received)
		_, err := service.Reorder(ctx, "museum_0", "museum_0")
		require.NoError(t, err)
		assert.Len(t, *received, before)
	})

	t.Run("should clear everything", func(t *testing.T) {
		set, err := service.Clear(ctx)
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())

		last := (*received)[len(*received)-1]
		assert.Equal(t, event_bus.ActionCleared, last.Action)
		assert.ElementsMatch(t, []string{"museum_0", "museum_1", "restaurant_0"}, last.IDs)

		listed, err := service.List(ctx)
		require.NoError(t, err)
		assert.True(t, listed.IsEmpty())
	})
}

func TestService_WithoutPersistence(t *testing.T) {
	opts := DefaultOptions()
	opts.Persist = false
	service := NewService(opts, nil, event_bus.FavoritesChangedEvent)

	set, err := service.Toggle(context.Background(), "museum_0")
	require.NoError(t, err)
	assert.Equal(t, []string{"museum_0"}, set.IDs())

	listed, err := service.List(context.Background())
	require.NoError(t, err)
	assert.True(t, listed.IsEmpty())
}
