package model

import "fmt"

// Index identifies a cell by its position on the grid
type Index struct {
	X int
	Y int
}

// NewIndex creates an index at (x, y)
func NewIndex(x, y int) Index {
	return Index{X: x, Y: y}
}

func (i Index) String() string {
	return fmt.Sprintf("(x: %d, y: %d)", i.X, i.Y)
}
