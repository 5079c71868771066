package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	src := []float64{1, -1, 2, -2, 3, -3}
	planes := [][]float64{make([]float64, 3), make([]float64, 3)}

	n := Deinterleave(planes, src)
	if n != 3 {
		t.Fatalf("frames = %d, want 3", n)
	}
	if planes[0][2] != 3 || planes[1][2] != -3 {
		t.Fatalf("unexpected planes: %v", planes)
	}

	out := make([]float64, len(src))
	Interleave(out, planes, n)
	for i := range src {
		if out[i] != src[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], src[i])
		}
	}
}

func TestDeinterleaveShortPlane(t *testing.T) {
	planes := [][]float64{make([]float64, 1), make([]float64, 4)}
	if n := Deinterleave(planes, make([]float64, 8)); n != 1 {
		t.Fatalf("frames = %d, want 1", n)
	}
}
