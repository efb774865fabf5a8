package tool

import "slices"

// Map is a map keyed by tool id with case-insensitive lookup.
// The zero value is ready to use. It is not safe for concurrent mutation.
type Map[V any] struct {
	entries map[Key]mapEntry[V]
}

type mapEntry[V any] struct {
	id    ID
	value V
}

// Set stores value under id. An existing entry keeps its original id spelling.
func (m *Map[V]) Set(id ID, value V) {
	if m.entries == nil {
		m.entries = make(map[Key]mapEntry[V])
	}
	key := id.Key()
	if existing, ok := m.entries[key]; ok {
		id = existing.id
	}
	m.entries[key] = mapEntry[V]{id: id, value: value}
}

func (m *Map[V]) Get(id ID) (V, bool) {
	entry, ok := m.entries[id.Key()]
	return entry.value, ok
}

// Lookup returns the stored id spelling along with the value.
func (m *Map[V]) Lookup(id ID) (ID, V, bool) {
	entry, ok := m.entries[id.Key()]
	return entry.id, entry.value, ok
}

func (m *Map[V]) Has(id ID) bool {
	_, ok := m.entries[id.Key()]
	return ok
}

func (m *Map[V]) Delete(id ID) {
	delete(m.entries, id.Key())
}

func (m *Map[V]) Len() int {
	return len(m.entries)
}

// IDs returns the stored ids in sorted order.
func (m *Map[V]) IDs() []ID {
	ids := make([]ID, 0, len(m.entries))
	for _, entry := range m.entries {
		ids = append(ids, entry.id)
	}
	slices.SortFunc(ids, ID.Compare)
	return ids
}

// SortIDs sorts ids in place by case-insensitive author, then name.
func SortIDs(ids []ID) {
	slices.SortStableFunc(ids, ID.Compare)
}

// DedupeIDs returns ids with case-insensitive duplicates removed, keeping the first spelling.
func DedupeIDs(ids []ID) []ID {
	seen := make(map[Key]struct{}, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		key := id.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, id)
	}
	return out
}
