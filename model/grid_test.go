package model

import (
	"errors"
	"math/rand"
	"testing"
)

func mustGrid(t testing.TB, width, height int) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	return g
}

func mustSet(t testing.TB, g *Grid, x, y int) {
	t.Helper()
	if err := g.Set(x, y, true); err != nil {
		t.Fatalf("Set(%d, %d): %v", x, y, err)
	}
}

func TestNewGridAllCellsDead(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {1, 1}, {5, 3}, {0, 4}, {7, 0}} {
		g := mustGrid(t, dims[0], dims[1])
		if g.GetWidth() != dims[0] || g.GetHeight() != dims[1] {
			t.Errorf("grid is %dx%d, want %dx%d", g.GetWidth(), g.GetHeight(), dims[0], dims[1])
		}
		if living := g.CountLivingCells(); living != 0 {
			t.Errorf("fresh %dx%d grid has %d living cells", dims[0], dims[1], living)
		}
	}
}

func TestNewGridRejectsNegativeDimensions(t *testing.T) {
	for _, dims := range [][2]int{{-1, 5}, {5, -1}, {-2, -2}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGrid(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {10, 10}} {
		if err := g.Set(c[0], c[1], true); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) err = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if _, err := g.Get(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d, %d) err = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if _, err := g.LivingNeighborCount(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("LivingNeighborCount(%d, %d) err = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
}

func TestSetThenGet(t *testing.T) {
	g := mustGrid(t, 4, 4)
	mustSet(t, g, 2, 1)

	alive, err := g.Get(2, 1)
	if err != nil || !alive {
		t.Fatalf("Get(2, 1) = %v, %v, want alive", alive, err)
	}
	if err = g.Set(2, 1, false); err != nil {
		t.Fatalf("Set(2, 1, false): %v", err)
	}
	if alive, _ = g.Get(2, 1); alive {
		t.Fatal("cell still alive after Set(2, 1, false)")
	}
}

func TestLivingNeighborCountExcludesSelf(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			mustSet(t, g, x, y)
		}
	}

	// Center of a fully live 3x3 board: all 8 neighbors, never itself.
	n, err := g.LivingNeighborCount(1, 1)
	if err != nil {
		t.Fatalf("LivingNeighborCount(1, 1): %v", err)
	}
	if n != 8 {
		t.Errorf("center count = %d, want 8", n)
	}
}

func TestLivingNeighborCountClipsAtEdges(t *testing.T) {
	g := mustGrid(t, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			mustSet(t, g, x, y)
		}
	}

	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 3}, // corner: 3 candidate neighbors
		{3, 3, 3},
		{1, 0, 5}, // edge: 5 candidate neighbors
		{0, 2, 5},
		{1, 1, 8}, // interior
	}
	for _, c := range cases {
		n, err := g.LivingNeighborCount(c.x, c.y)
		if err != nil {
			t.Fatalf("LivingNeighborCount(%d, %d): %v", c.x, c.y, err)
		}
		if n != c.want {
			t.Errorf("count at (%d,%d) = %d, want %d", c.x, c.y, n, c.want)
		}
	}
}

func TestPopulateRandomExtremes(t *testing.T) {
	g := mustGrid(t, 6, 6)
	rng := rand.New(rand.NewSource(1))

	if err := g.PopulateRandom(0, rng); err != nil {
		t.Fatalf("PopulateRandom(0): %v", err)
	}
	if living := g.CountLivingCells(); living != 0 {
		t.Errorf("probability 0 produced %d living cells", living)
	}

	if err := g.PopulateRandom(1, rng); err != nil {
		t.Fatalf("PopulateRandom(1): %v", err)
	}
	if living := g.CountLivingCells(); living != 36 {
		t.Errorf("probability 1 produced %d living cells, want 36", living)
	}
}

func TestPopulateRandomDeterministicWithSeed(t *testing.T) {
	a := mustGrid(t, 10, 10)
	b := mustGrid(t, 10, 10)

	if err := a.PopulateRandom(0.5, rand.New(rand.NewSource(42))); err != nil {
		t.Fatal(err)
	}
	if err := b.PopulateRandom(0.5, rand.New(rand.NewSource(42))); err != nil {
		t.Fatal(err)
	}
	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Error("same seed produced different boards")
	}
}

func TestPopulateRandomRejectsBadProbability(t *testing.T) {
	g := mustGrid(t, 2, 2)
	for _, p := range []float64{-0.1, 1.5} {
		if err := g.PopulateRandom(p, nil); !errors.Is(err, ErrInvalidProbability) {
			t.Errorf("PopulateRandom(%v) err = %v, want ErrInvalidProbability", p, err)
		}
	}
}

func TestSnapshotEquality(t *testing.T) {
	a := mustGrid(t, 4, 3)
	b := mustGrid(t, 4, 3)
	mustSet(t, a, 1, 2)
	mustSet(t, b, 1, 2)

	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Error("identical boards compare unequal")
	}

	mustSet(t, b, 0, 0)
	if a.Snapshot().Equal(b.Snapshot()) {
		t.Error("boards differing at (0,0) compare equal")
	}

	// Same cell bytes, different shapes.
	wide := mustGrid(t, 3, 2)
	tall := mustGrid(t, 2, 3)
	if wide.Snapshot().Equal(tall.Snapshot()) {
		t.Error("3x2 and 2x3 snapshots compare equal")
	}
}

func TestSnapshotIsImmutableCopy(t *testing.T) {
	g := mustGrid(t, 3, 3)
	mustSet(t, g, 1, 1)
	snap := g.Snapshot()

	if err := g.Set(1, 1, false); err != nil {
		t.Fatal(err)
	}
	if !snap.Alive(1, 1) {
		t.Error("snapshot changed after grid mutation")
	}
}

func TestSwapExchangesCells(t *testing.T) {
	a := mustGrid(t, 3, 3)
	b := mustGrid(t, 3, 3)
	mustSet(t, a, 0, 0)

	if err := a.Swap(b); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if alive, _ := a.Get(0, 0); alive {
		t.Error("a still holds its old cells after Swap")
	}
	if alive, _ := b.Get(0, 0); !alive {
		t.Error("b did not receive a's cells")
	}

	c := mustGrid(t, 2, 3)
	if err := a.Swap(c); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Swap with mismatched dimensions err = %v, want ErrInvalidDimension", err)
	}
}
