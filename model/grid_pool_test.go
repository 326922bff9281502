package model

import "testing"

func TestGridPoolReturnsResetGrid(t *testing.T) {
	pool := NewGridPool()

	g := pool.Get(4, 3)
	g.ToggleCell(NewIndex(1, 1))
	g.Tick()
	GridToPool(g, pool)

	g = pool.Get(6, 2)
	if g.GetWidth() != 6 || g.GetHeight() != 2 || g.GetArea() != 12 {
		t.Fatalf("unexpected dimensions %dx%d area %d", g.GetWidth(), g.GetHeight(), g.GetArea())
	}
	if g.Generation() != 0 {
		t.Errorf("expected generation 0, got %d", g.Generation())
	}
	for x := range 6 {
		for y := range 2 {
			at := NewIndex(x, y)
			c := g.Cell(at)
			if c.IsAlive || c.Index != at {
				t.Errorf("expected dead cell at %s, got %s", at, c)
			}
		}
	}
}

func TestGridToPoolWithoutPool(t *testing.T) {
	// must not panic
	GridToPool(NewGrid(2, 2), nil)
}
