package cache

import "testing"

func TestNew(t *testing.T) {
	s := New[string, int]()
	if s == nil {
		t.Fatal("New returned nil")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", s.Len())
	}
}

func TestStoreGetOrCreate(t *testing.T) {
	s := New[string, []int]()
	created := 0

	first := s.GetOrCreate("key1", func() []int {
		created++
		return []int{1, 2, 3}
	})
	second := s.GetOrCreate("key1", func() []int {
		created++
		return []int{9}
	})

	if created != 1 {
		t.Errorf("expected create called once, got %d", created)
	}
	if len(second) != 3 || &first[0] != &second[0] {
		t.Errorf("second lookup = %v, want the stored %v", second, first)
	}
}

type compositeKey struct {
	x, y    int
	percent float64
}

func TestStoreStructKeys(t *testing.T) {
	s := New[compositeKey, int]()
	s.GetOrCreate(compositeKey{1, 2, 50}, func() int { return 1 })
	s.GetOrCreate(compositeKey{1, 2, 50.5}, func() int { return 2 })

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if v := s.GetOrCreate(compositeKey{1, 2, 50}, func() int { return 3 }); v != 1 {
		t.Errorf("GetOrCreate() = %d, want stored 1", v)
	}
}

func TestStoreResetAndStats(t *testing.T) {
	s := New[string, int]()
	s.GetOrCreate("a", func() int { return 1 })
	s.GetOrCreate("a", func() int { return 2 })
	s.GetOrCreate("a", func() int { return 3 })

	st := s.Stats()
	if st.Len != 1 || st.Hits != 2 || st.Misses != 1 {
		t.Errorf("Stats() = %+v, want len 1, hits 2, misses 1", st)
	}
	if st.HitRate < 0.66 || st.HitRate > 0.67 {
		t.Errorf("HitRate = %v, want 2/3", st.HitRate)
	}

	s.Reset()
	if s.Len() != 0 || s.Stats().Hits != 0 {
		t.Errorf("after Reset: %+v", s.Stats())
	}
	if v := s.GetOrCreate("a", func() int { return 4 }); v != 4 {
		t.Errorf("after Reset GetOrCreate = %d, want regenerated 4", v)
	}
}

func BenchmarkStoreHit(b *testing.B) {
	s := New[int, int]()
	s.GetOrCreate(1, func() int { return 1 })
	b.ReportAllocs()
	for b.Loop() {
		_ = s.GetOrCreate(1, func() int { return 2 })
	}
}
