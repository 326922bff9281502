package model

import "golang.org/x/exp/rand"

var (
	gliderPattern = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	blinkerPattern = [][]bool{
		{true, true, true},
	}
)

// stamp writes pattern with its top-left corner at origin, skipping any part
// that falls outside the grid
func (g *Grid) stamp(origin Index, pattern [][]bool) {
	for y, row := range pattern {
		for x, alive := range row {
			at := NewIndex(origin.X+x, origin.Y+y)
			if g.IsValidIndex(at) {
				g.SetCell(at, alive)
			}
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(at Index) {
	g.stamp(at, gliderPattern)
}

// AddBlinker adds a horizontal blinker oscillator at the specified position
func (g *Grid) AddBlinker(at Index) {
	g.stamp(at, blinkerPattern)
}

// Randomize brings each cell to life with probability density. Cells that
// are already alive stay alive.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i].IsAlive = true
		}
	}
}

// InjectRandomLife brings up to count random cells to life
func (g *Grid) InjectRandomLife(rng *rand.Rand, count int) {
	if g.area == 0 {
		return
	}
	for i := 0; i < count; i++ {
		g.SetCell(NewIndex(rng.Intn(g.width), rng.Intn(g.height)), true)
	}
}

// ResetWithInterestingPatterns clears the grid and adds a few gliders and
// blinkers on top of random life
func (g *Grid) ResetWithInterestingPatterns(rng *rand.Rand, density float64) {
	g.Clear()

	if g.width >= 10 && g.height >= 10 {
		g.AddGlider(NewIndex(5, 5))
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(NewIndex(g.width-8, 5))
		}

		g.AddBlinker(NewIndex(g.width/4, g.height/4))
		if g.width >= 30 {
			g.AddBlinker(NewIndex(3*g.width/4, 3*g.height/4))
		}
	}

	g.Randomize(rng, density)
}
