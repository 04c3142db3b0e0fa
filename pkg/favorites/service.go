package favorites

import (
	"context"
	"errors"
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/event_bus"
)

var ErrUnknownItem = errors.New("unknown item")

type Service interface {
	List(ctx context.Context) (Set, error)
	Toggle(ctx context.Context, id string) (Set, error)
	Reorder(ctx context.Context, id, targetId string) (Set, error)
	Clear(ctx context.Context) (Set, error)
}

type ServiceImpl struct {
	opts      Options
	eventBus  *event_bus.EventBus
	eventType event_bus.EventType
}

// NewService builds a service whose stores use opts. opts.Known also guards
// Toggle against ids that do not exist. Changes are published as eventType
// when eventBus is not nil.
func NewService(opts Options, eventBus *event_bus.EventBus, eventType event_bus.EventType) *ServiceImpl {
	return &ServiceImpl{opts: opts.withDefaults(), eventBus: eventBus, eventType: eventType}
}

func (s *ServiceImpl) List(ctx context.Context) (Set, error) {
	store, err := s.openStore(ctx)
	if err != nil {
		return Set{}, err
	}
	return store.Load(ctx), nil
}

func (s *ServiceImpl) Toggle(ctx context.Context, id string) (Set, error) {
	if id == "" || (s.opts.Known != nil && !s.opts.Known(id)) {
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	store, err := s.openStore(ctx)
	if err != nil {
		return Set{}, err
	}

	action := event_bus.ActionAdded
	if store.Load(ctx).Contains(id) {
		action = event_bus.ActionRemoved
	}
	set := store.Toggle(ctx, id)
	log.Debugf("%s %s: %s", s.opts.Key, action, id)
	s.publish(ctx, action, []string{id}, set)
	return set, nil
}

func (s *ServiceImpl) Reorder(ctx context.Context, id, targetId string) (Set, error) {
	store, err := s.openStore(ctx)
	if err != nil {
		return Set{}, err
	}

	before := store.Load(ctx)
	set := store.Reorder(ctx, id, targetId)
	if !slices.Equal(before.ids, set.ids) {
		s.publish(ctx, event_bus.ActionReordered, []string{id, targetId}, set)
	}
	return set, nil
}

func (s *ServiceImpl) Clear(ctx context.Context) (Set, error) {
	store, err := s.openStore(ctx)
	if err != nil {
		return Set{}, err
	}

	before := store.Load(ctx)
	set := store.Clear(ctx)
	if !before.IsEmpty() {
		s.publish(ctx, event_bus.ActionCleared, before.IDs(), set)
	}
	return set, nil
}

func (s *ServiceImpl) openStore(ctx context.Context) (*Store, error) {
	if !s.opts.Persist {
		return NewStore(nil, s.opts), nil
	}
	storage, err := CurrentStorage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s storage: %w", s.opts.Key, err)
	}
	return NewStore(storage, s.opts), nil
}

func (s *ServiceImpl) publish(ctx context.Context, action event_bus.ChangeAction, ids []string, set Set) {
	if s.eventBus == nil {
		return
	}
	err := s.eventBus.Publish(event_bus.NewEvent(ctx, s.eventType, event_bus.SetChanged{
		Action:  action,
		IDs:     ids,
		Current: set.IDs(),
	}))
	if err != nil {
		log.Warnf("failed to publish %s: %v", s.eventType, err)
	}
}
