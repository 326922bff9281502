package model

import "fmt"

const (
	cellAlive = "Alive"
	cellDead  = "Dead"
)

// Cell is a single grid location and its state
type Cell struct {
	IsAlive bool
	Index   Index
}

func (c Cell) String() string {
	state := cellDead
	if c.IsAlive {
		state = cellAlive
	}
	return fmt.Sprintf("%s: %s", state, c.Index)
}
