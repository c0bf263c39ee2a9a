package rental

import "sort"

// Selection tracks which crashpads the visitor has picked. Membership here
// is authoritative; rendered cards derive from it, never the other way
// around.
type Selection map[int64]struct{}

// SelectionFromIDs rebuilds a selection from its serialized form.
func SelectionFromIDs(ids []int64) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Toggle flips membership for the given id and reports the new state.
// Toggling twice with no intervening change restores the original state.
func (s Selection) Toggle(id int64) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s Selection) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) Count() int { return len(s) }

// Clear empties the selection in place.
func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// IDs returns the selected ids sorted, for stable serialization.
func (s Selection) IDs() []int64 {
	if len(s) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
