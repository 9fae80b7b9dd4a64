// Package cache provides the session-scoped placement store used by the
// layout algorithms.
//
// A Store remembers the first value generated for a key and replays it on
// every later lookup, which keeps pseudo-random placements identical across
// the frames of one animation. Stores are not safe for concurrent use; a
// render session owns its stores and discards them when it ends.
package cache

// Stats holds store statistics.
type Stats struct {
	// Len is the number of entries.
	Len int

	// Hits is the number of lookups that found an entry.
	Hits uint64

	// Misses is the number of lookups that had to create an entry.
	Misses uint64

	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
}

// Store is a write-once keyed store.
type Store[K comparable, V any] struct {
	entries map[K]V
	hits    uint64
	misses  uint64
}

// New creates an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{entries: make(map[K]V)}
}

// GetOrCreate returns the stored value for key, calling create and storing
// its result on the first lookup. An existing entry is never replaced.
//
// The value is stored as-is (not copied). Callers must not modify it.
func (s *Store[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := s.entries[key]; ok {
		s.hits++
		return v
	}
	s.misses++
	v := create()
	s.entries[key] = v
	return v
}

// Len returns the number of entries.
func (s *Store[K, V]) Len() int {
	return len(s.entries)
}

// Reset removes all entries and statistics.
func (s *Store[K, V]) Reset() {
	s.entries = make(map[K]V)
	s.hits = 0
	s.misses = 0
}

// Stats returns current store statistics.
func (s *Store[K, V]) Stats() Stats {
	var hitRate float64
	if total := s.hits + s.misses; total > 0 {
		hitRate = float64(s.hits) / float64(total)
	}
	return Stats{
		Len:     len(s.entries),
		Hits:    s.hits,
		Misses:  s.misses,
		HitRate: hitRate,
	}
}
