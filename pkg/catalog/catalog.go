package catalog

import (
	"errors"
	"fmt"
	"strings"
)

type Category string

const (
	Museum       Category = "museum"
	Attraction   Category = "attraction"
	Restaurant   Category = "restaurant"
	Neighborhood Category = "neighborhood"
)

var Categories = []Category{Museum, Attraction, Restaurant, Neighborhood}

var ErrUnknownCategory = errors.New("unknown category")
var ErrItemNotFound = errors.New("catalog item not found")

type Item struct {
	// ID has the form <category>_<index>, index counted per category from 0.
	ID       string
	Name     string
	Category Category
	// Price in euro cents. Ignored when Free is set.
	Price    int64
	Free     bool
	Location string
}

// PriceCents returns the price used for sums, 0 for free items.
func (i Item) PriceCents() int64 {
	if i.Free {
		return 0
	}
	return i.Price
}

// Entry is a catalog row before an id has been assigned.
type Entry struct {
	Category Category
	Name     string
	Price    int64
	Free     bool
	Location string
}

// Catalog is an immutable id -> item lookup that keeps the source order.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

// New assigns ids to the entries in the order given and builds the lookup.
func New(entries []Entry) *Catalog {
	counters := make(map[Category]int, len(Categories))
	items := make([]Item, 0, len(entries))
	byID := make(map[string]Item, len(entries))
	for _, e := range entries {
		idx := counters[e.Category]
		counters[e.Category] = idx + 1
		item := Item{
			ID:       ItemID(e.Category, idx),
			Name:     e.Name,
			Category: e.Category,
			Price:    e.Price,
			Free:     e.Free,
			Location: e.Location,
		}
		items = append(items, item)
		byID[item.ID] = item
	}
	return &Catalog{items: items, byID: byID}
}

func ItemID(category Category, index int) string {
	return fmt.Sprintf("%s_%d", category, index)
}

// CategoryOf extracts the category prefix of an item id. It does not check
// that the id exists in any catalog.
func CategoryOf(id string) (Category, bool) {
	idx := strings.LastIndex(id, "_")
	if idx <= 0 {
		return "", false
	}
	category, err := ParseCategory(id[:idx])
	if err != nil {
		return "", false
	}
	return category, true
}

func ParseCategory(value string) (Category, error) {
	normalized := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, c := range Categories {
		if c == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
}

func (c *Catalog) Get(id string) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns a copy of all items in source order.
func (c *Catalog) All() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Catalog) ByCategory(category Category) []Item {
	items := make([]Item, 0)
	for _, item := range c.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

func (c *Catalog) Len() int {
	return len(c.items)
}
