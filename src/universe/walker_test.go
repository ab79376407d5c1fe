package universe

import (
	"errors"
	"math"
	"testing"
)

func TestNewWalkerRejectsProbability(t *testing.T) {
	for _, p := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		if _, err := NewWalker(p, 1); !errors.Is(err, ErrInvalidProbability) {
			t.Errorf("NewWalker(%v) error = %v, expected ErrInvalidProbability", p, err)
		}
	}
}

func TestWalkerDisabled(t *testing.T) {
	glider := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	u := newUniverse(t, 6, 6, alive(glider...))
	w, err := NewWalker(0, 42)
	if err != nil {
		t.Fatal(err)
	}
	if n := w.Walk(u); n != 0 {
		t.Fatalf("Walk spawned %d sprites with probability 0", n)
	}
	expectAlive(t, u, glider...)
}

func TestWalkerCertain(t *testing.T) {
	u := newUniverse(t, 5, 4)
	w, err := NewWalker(1, 42)
	if err != nil {
		t.Fatal(err)
	}
	if n := w.Walk(u); n != 20 {
		t.Fatalf("Walk spawned %d sprites, expected one per cell", n)
	}
	if n := u.LiveCells(); n != 20 {
		t.Fatalf("LiveCells() = %d, expected 20", n)
	}
}

func TestWalkerOnlyAddsCells(t *testing.T) {
	u := newUniverse(t, 16, 16, alive([2]int{4, 4}, [2]int{9, 12}))
	w, err := NewWalker(0.05, 7)
	if err != nil {
		t.Fatal(err)
	}
	before := u.Cells()
	spawned := w.Walk(u)
	after := u.Cells()
	for i := range before {
		if before[i] == Alive && after[i] != Alive {
			t.Fatalf("cell %d was killed by the walker", i)
		}
	}
	if u.LiveCells() > 2+spawned*len(walkerSprite) {
		t.Fatalf("%d live cells for %d sprites", u.LiveCells(), spawned)
	}
}

func TestWalkerIsDeterministic(t *testing.T) {
	run := func() string {
		u := newUniverse(t, 20, 10)
		w, err := NewWalker(0.02, 1234)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 5; i++ {
			u.Tick()
			w.Walk(u)
		}
		return u.Render()
	}
	if a, b := run(), run(); a != b {
		t.Fatalf("same seed produced different generations:\n%s\n%s", a, b)
	}
}
