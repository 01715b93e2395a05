package core

import "testing"

func TestByteGridWorldCoordinates(t *testing.T) {
	g := NewByteGridFor(Rect{XMin: -2, XMax: 1, YMin: -1, YMax: 0})
	if g.W != 4 || g.H != 2 {
		t.Fatalf("size = %dx%d, want 4x2", g.W, g.H)
	}
	g.Set(C(-2, -1), 7)
	g.Set(C(1, 0), 9)
	g.Set(C(5, 5), 1)

	if got := g.At(C(-2, -1)); got != 7 {
		t.Fatalf("At(-2,-1) = %d, want 7", got)
	}
	if got := g.Cells()[g.Index(3, 1)]; got != 9 {
		t.Fatalf("cell (3,1) = %d, want 9", got)
	}
	if g.InBounds(C(5, 5)) || g.At(C(5, 5)) != 0 {
		t.Fatal("out-of-bounds coordinate must read as zero")
	}

	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear", i, v)
		}
	}
}

func TestNewByteGridClampsSize(t *testing.T) {
	g := NewByteGrid(0, -3)
	if s := g.Size(); s.W != 1 || s.H != 1 {
		t.Fatalf("size = %+v, want 1x1", s)
	}
}
