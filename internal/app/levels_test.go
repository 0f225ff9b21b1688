package app

import "testing"

func TestLevelRingOrder(t *testing.T) {
	r := NewLevelRing(3)
	if r.Values() != nil || r.Last() != 0 || r.Len() != 0 {
		t.Fatal("expected empty ring")
	}

	r.Push(0.1)
	r.Push(0.2)
	if got := r.Values(); len(got) != 2 || got[0] != 0.1 || got[1] != 0.2 {
		t.Fatalf("Values() = %v", got)
	}

	r.Push(0.3)
	r.Push(0.4)
	got := r.Values()
	want := []float64{0.2, 0.3, 0.4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
	if r.Last() != 0.4 || r.Len() != 3 {
		t.Fatalf("Last() = %v, Len() = %d", r.Last(), r.Len())
	}
}
