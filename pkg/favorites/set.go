package favorites

import "slices"

// Set is an ordered collection of unique item ids.
type Set struct {
	ids []string
}

// NewSet keeps the first occurrence of every non-empty id.
func NewSet(ids ...string) Set {
	return Set{ids: dedupe(ids)}
}

// IDs returns a copy of the ids in display order.
func (s Set) IDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

func (s Set) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

func (s Set) Len() int {
	return len(s.ids)
}

func (s Set) IsEmpty() bool {
	return len(s.ids) == 0
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
