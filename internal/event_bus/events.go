package event_bus

const (
	FavoritesChangedEvent          EventType = "favorites.changed"
	ItineraryCompletedChangedEvent EventType = "itinerary.completed.changed"
)

type ChangeAction string

const (
	ActionAdded     ChangeAction = "added"
	ActionRemoved   ChangeAction = "removed"
	ActionReordered ChangeAction = "reordered"
	ActionCleared   ChangeAction = "cleared"
)

// SetChanged describes a mutation of a persisted ordered set (favorites or
// completed itinerary activities).
type SetChanged struct {
	Action ChangeAction
	// IDs affected by the action: one for add/remove, two for a swap.
	IDs []string
	// Current is the display order after the change.
	Current []string
}
