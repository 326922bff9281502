package model

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfBounds is returned (or panicked with) when an index lies outside the grid
	ErrIndexOutOfBounds = errors.New("cell index outside grid bounds")
	// ErrInvalidDimensions is returned (or panicked with) for a negative width or height
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)
