package geo

import "testing"

func TestStore_AddRemove(t *testing.T) {
	s := NewStore()
	a := NewPoint(1, 2)
	b := NewLineString(Coord{0, 0}, Coord{1, 1})

	s.Add(a)
	s.Add(b)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	// Insertion order iteration.
	all := s.All()
	if all[0] != Geometry(a) || all[1] != Geometry(b) {
		t.Errorf("iteration out of insertion order")
	}

	s.Remove(a)
	if s.Len() != 1 || s.Contains(a) {
		t.Errorf("Remove(a) failed: len=%d contains=%v", s.Len(), s.Contains(a))
	}
	if !s.Contains(b) {
		t.Errorf("Remove(a) dropped b")
	}
}

func TestStore_Duplicates(t *testing.T) {
	s := NewStore()
	a := NewPoint(1, 2)
	s.Add(a)
	s.Add(a)
	if s.Len() != 1 {
		t.Errorf("duplicate Add produced %d entries", s.Len())
	}
}

func TestStore_NilAndAbsent(t *testing.T) {
	s := NewStore()
	s.Add(nil)
	if s.Len() != 0 {
		t.Errorf("nil Add produced an entry")
	}
	s.Remove(NewPoint(0, 0)) // absent: no-op
	if s.Len() != 0 {
		t.Errorf("absent Remove changed the store")
	}
}
