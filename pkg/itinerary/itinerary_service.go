package itinerary

import (
	"context"
	"errors"
	"fmt"

	"github.com/weekendguide/berlin/internal/event_bus"
	"github.com/weekendguide/berlin/pkg/favorites"
)

const (
	CompletedKey      = "completed"
	CompletedOrderKey = "completedOrder"
)

type Progress struct {
	Activities []Activity
	Completed  favorites.Set
	Summary    Summary
}

type Service interface {
	Get(ctx context.Context) (Progress, error)
	Toggle(ctx context.Context, index int) (Progress, error)
}

type ServiceImpl struct {
	plan      *Plan
	completed favorites.Service
}

// NewService keeps completed activities in a favorites set under its own keys,
// so they share the client's storage and retention.
func NewService(plan *Plan, opts favorites.Options, eventBus *event_bus.EventBus) *ServiceImpl {
	opts.Key = CompletedKey
	opts.OrderKey = CompletedOrderKey
	opts.Known = plan.Has
	return &ServiceImpl{
		plan:      plan,
		completed: favorites.NewService(opts, eventBus, event_bus.ItineraryCompletedChangedEvent),
	}
}

func (s *ServiceImpl) Get(ctx context.Context) (Progress, error) {
	set, err := s.completed.List(ctx)
	if err != nil {
		return Progress{}, fmt.Errorf("failed to load completed activities: %w", err)
	}
	return s.progress(set), nil
}

func (s *ServiceImpl) Toggle(ctx context.Context, index int) (Progress, error) {
	if _, ok := s.plan.Get(index); !ok {
		return Progress{}, fmt.Errorf("%w: %d", ErrActivityNotFound, index)
	}
	set, err := s.completed.Toggle(ctx, ActivityID(index))
	if err != nil {
		if errors.Is(err, favorites.ErrUnknownItem) {
			return Progress{}, fmt.Errorf("%w: %d", ErrActivityNotFound, index)
		}
		return Progress{}, err
	}
	return s.progress(set), nil
}

func (s *ServiceImpl) progress(set favorites.Set) Progress {
	return Progress{
		Activities: s.plan.Activities(),
		Completed:  set,
		Summary:    s.plan.Summarize(set.IDs()),
	}
}
