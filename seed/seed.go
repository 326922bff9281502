// Package seed loads starting patterns from YAML files and places them on a grid.
//
//	name: glider
//	cells:
//	  - {x: 1, y: 0}
//	  - {x: 2, y: 1}
//	  - {x: 0, y: 2}
//	  - {x: 1, y: 2}
//	  - {x: 2, y: 2}
package seed

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// Point is one live cell of a seed
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Seed is a named set of live cells
type Seed struct {
	Name  string  `yaml:"name"`
	Cells []Point `yaml:"cells"`
}

// Load reads and parses a seed file
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[seed.Load] failed to read file: %+v", path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "[seed.Load] file: %+v", path)
	}
	return s, nil
}

// Parse decodes a seed document
func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "[seed.Parse] failed to unmarshal seed")
	}
	return &s, nil
}

// Apply brings every listed cell to life. If any cell lies outside the grid
// nothing is changed and an error wrapping model.ErrIndexOutOfBounds is returned.
func (s *Seed) Apply(g *model.Grid) error {
	for _, p := range s.Cells {
		if at := model.NewIndex(p.X, p.Y); !g.IsValidIndex(at) {
			return errors.Wrapf(model.ErrIndexOutOfBounds, "[Seed.Apply] %q cell %s on %dx%d grid",
				s.Name, at, g.GetWidth(), g.GetHeight())
		}
	}

	for _, p := range s.Cells {
		g.SetCell(model.NewIndex(p.X, p.Y), true)
	}
	return nil
}
