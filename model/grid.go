package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// Grid represents the game board
//
// Cells are stored row-major in a flat slice, addressed by y*width+x. A
// second buffer of the same size receives the next generation during Tick
// and is swapped in once every cell has been computed.
type Grid struct {
	width      int
	height     int
	area       int
	generation int
	cells      []Cell
	next       []Cell
	history    []string // Store recent grid states for cycle detection
}

// NewGrid creates a new grid with the specified dimensions, every cell dead.
// A negative width or height is a programming error and panics.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// GetArea returns width * height
func (g *Grid) GetArea() int {
	return g.area
}

// Generation returns the number of ticks since the grid was last reset
func (g *Grid) Generation() int {
	return g.generation
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(width, height int) {
	if width < 0 || height < 0 {
		panic(errors.Wrapf(ErrInvalidDimensions, "[Grid.Reset] %dx%d", width, height))
	}

	g.width = width
	g.height = height
	g.area = width * height
	g.generation = 0
	g.history = nil

	// Reuse the buffers when they are large enough
	if cap(g.cells) < g.area {
		g.cells = make([]Cell, g.area)
		g.next = make([]Cell, g.area)
	}
	g.cells = g.cells[:g.area]
	g.next = g.next[:g.area]

	for y := range height {
		for x := range width {
			g.cells[y*width+x] = Cell{Index: Index{X: x, Y: y}}
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].IsAlive = false
	}
	g.history = nil
}

// IsValidIndex reports whether at lies within the grid
func (g *Grid) IsValidIndex(at Index) bool {
	return at.X >= 0 && at.X < g.width && at.Y >= 0 && at.Y < g.height
}

// offset returns the position of at in the cell slice, panicking when at is
// outside the grid
func (g *Grid) offset(at Index, caller string) int {
	if !g.IsValidIndex(at) {
		panic(errors.Wrapf(ErrIndexOutOfBounds, "[%s] %s not within %dx%d", caller, at, g.width, g.height))
	}
	return at.Y*g.width + at.X
}

// Cell returns a copy of the cell at the given index.
// Callers must check IsValidIndex first; an out of bounds index panics.
func (g *Grid) Cell(at Index) Cell {
	return g.cells[g.offset(at, "Grid.Cell")]
}

// ToggleCell flips the state of the cell at the given index and returns its new state
func (g *Grid) ToggleCell(at Index) bool {
	c := &g.cells[g.offset(at, "Grid.ToggleCell")]
	c.IsAlive = !c.IsAlive
	return c.IsAlive
}

// SetCell sets a cell to alive (true) or dead (false)
func (g *Grid) SetCell(at Index, alive bool) {
	g.cells[g.offset(at, "Grid.SetCell")].IsAlive = alive
}

// Neighbors returns the Moore neighborhood of at with each axis clamped into
// the grid. Near an edge several offsets collapse onto the same index, which
// may be at itself; the duplicates are kept and each one is counted by Tick.
func (g *Grid) Neighbors(at Index) [8]Index {
	var neighbors [8]Index
	for i, o := range rules.MooreOffsets {
		neighbors[i] = Index{
			X: rules.Clamp(at.X+o.DX, 0, g.width-1),
			Y: rules.Clamp(at.Y+o.DY, 0, g.height-1),
		}
	}
	return neighbors
}

// CountLiveNeighbors counts the live cells among the clamped neighbors of at
func (g *Grid) CountLiveNeighbors(at Index) (count int) {
	for _, n := range g.Neighbors(at) {
		if g.cells[n.Y*g.width+n.X].IsAlive {
			count++
		}
	}
	return
}

// Tick advances the grid by one generation. Every next state is computed
// from the current cells before any of them is replaced.
func (g *Grid) Tick() {
	for i, c := range g.cells {
		g.next[i] = Cell{
			IsAlive: rules.ApplyConwayRules(g.CountLiveNeighbors(c.Index), c.IsAlive),
			Index:   c.Index,
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.IsAlive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d", g.width, g.height)
	for _, c := range g.cells {
		if c.IsAlive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a static state or a short cycle.
// The current state is compared against the three most recently recorded states.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for _, h := range g.history[len(g.history)-3:] {
		if h == currentHash {
			return true
		}
	}
	return false
}
