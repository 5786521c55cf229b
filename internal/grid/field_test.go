package grid

import "testing"

func TestGridIndexing(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(2, 1, 1.5)
	if got := g.At(2, 1); got != 1.5 {
		t.Errorf("expected 1.5, got %f", got)
	}
	if got := g.At(1, 2); got != 0 {
		t.Errorf("expected zero at untouched node, got %f", got)
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(4, 3)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	g.At(0, 3)
}

func TestFieldShape(t *testing.T) {
	f := NewField(5, 7)
	for i := 0; i < 5; i++ {
		f.Rotate()
		if f.Prev().Nx() != 5 || f.Cur().Nx() != 5 || f.Next().Nx() != 5 {
			t.Fatal("Nx changed across rotation")
		}
		if f.Prev().Ny() != 7 || f.Cur().Ny() != 7 || f.Next().Ny() != 7 {
			t.Fatal("Ny changed across rotation")
		}
	}
}

func TestRotateRelabelsWithoutCopy(t *testing.T) {
	f := NewField(3, 3)

	prev, cur, next := f.Prev(), f.Cur(), f.Next()
	next.Set(1, 1, 42)

	f.Rotate()

	if f.Cur() != next {
		t.Error("current after rotate should be the old next buffer")
	}
	if f.Prev() != cur {
		t.Error("previous after rotate should be the old current buffer")
	}
	if f.Next() != prev {
		t.Error("next after rotate should reuse the old previous buffer")
	}
	if got := f.Cur().At(1, 1); got != 42 {
		t.Errorf("rotation lost data: expected 42, got %f", got)
	}
}

func TestThreeBuffersReusedAcrossManyRotations(t *testing.T) {
	f := NewField(3, 3)

	seen := map[*Grid]bool{}
	for i := 0; i < 150; i++ {
		seen[f.Prev()] = true
		seen[f.Cur()] = true
		seen[f.Next()] = true

		wantCur := f.Next()
		f.Rotate()
		if f.Cur() != wantCur {
			t.Fatalf("rotation %d: current is not the previous step's next buffer", i)
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected exactly 3 distinct buffers, saw %d", len(seen))
	}
}
