package rng

import "testing"

func TestNew_SameSeed_SameSequence(t *testing.T) {
	a, seedA := New(42)
	b, seedB := New(42)
	if seedA != 42 || seedB != 42 {
		t.Fatalf("expected seed 42, got %d / %d", seedA, seedB)
	}
	for i := 0; i < 20; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestNew_ZeroSeed_UsesClock(t *testing.T) {
	_, seed := New(0)
	if seed == 0 {
		t.Fatalf("expected non-zero effective seed")
	}
}

func TestFixed_ReplaysAndClamps(t *testing.T) {
	f := NewFixed([]int{3, 99, -1}, []float64{0.1})

	if v := f.IntN(10); v != 3 {
		t.Fatalf("expected 3, got %d", v)
	}
	if v := f.IntN(10); v != 9 {
		t.Fatalf("expected clamp to 9, got %d", v)
	}
	if v := f.IntN(10); v != 0 {
		t.Fatalf("expected clamp to 0, got %d", v)
	}
	if v := f.IntN(10); v != 0 {
		t.Fatalf("expected 0 on empty queue, got %d", v)
	}
	if v := f.Float64(); v != 0.1 {
		t.Fatalf("expected 0.1, got %v", v)
	}
	if v := f.Float64(); v != 0.999 {
		t.Fatalf("expected fallback, got %v", v)
	}
}
