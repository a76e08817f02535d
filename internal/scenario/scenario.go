// Package scenario defines the YAML map format the lab loads: topology,
// dimensions, wall rows, terrain costs, start/goals, lights. Scenarios
// are declarative data; modes turn them into engine grids.
package scenario

import (
	"fmt"

	"github.com/vovakirdan/gridkit/coord"
)

// Topology names accepted in scenario files.
const (
	TopologySquare4 = "square4"
	TopologySquare8 = "square8"
	TopologyHex     = "hex"
)

// Point is a cell position in scenario space. For hex scenarios the
// components are axial q and r.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LightSpec places a light source for visibility scenarios.
type LightSpec struct {
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Radius    int     `yaml:"radius"`
	Intensity float64 `yaml:"intensity"`
}

// Scenario is one loadable map. Walls is a list of rows, top to bottom:
// '#' blocks, '.' and ' ' are open, any other rune is open terrain whose
// enter cost comes from the Terrain table.
type Scenario struct {
	Name     string         `yaml:"name"`
	Topology string         `yaml:"topology"`
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Walls    []string       `yaml:"walls"`
	Terrain  map[string]int `yaml:"terrain"`
	Start    *Point         `yaml:"start"`
	Goals    []Point        `yaml:"goals"`
	Lights   []LightSpec    `yaml:"lights"`
}

// Validate checks the scenario for a known topology and positive
// dimensions. Unknown topology strings report coord.ErrTopologyMismatch.
func (s *Scenario) Validate() error {
	switch s.Topology {
	case TopologySquare4, TopologySquare8, TopologyHex:
	case "":
		return fmt.Errorf("scenario %q: missing topology: %w", s.Name, coord.ErrTopologyMismatch)
	default:
		return fmt.Errorf("scenario %q: unknown topology %q: %w", s.Name, s.Topology, coord.ErrTopologyMismatch)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scenario %q: invalid dimensions %dx%d", s.Name, s.Width, s.Height)
	}
	for _, row := range s.Walls {
		if len([]rune(row)) > s.Width {
			return fmt.Errorf("scenario %q: wall row longer than width %d", s.Name, s.Width)
		}
	}
	return nil
}

// runeAt returns the map rune at (x, y), or '.' outside the painted rows.
func (s *Scenario) runeAt(x, y int) rune {
	if y < 0 || y >= len(s.Walls) || x < 0 {
		return '.'
	}
	row := []rune(s.Walls[y])
	if x >= len(row) {
		return '.'
	}
	return row[x]
}

// Blocked reports whether the cell at (x, y) is a wall.
func (s *Scenario) Blocked(x, y int) bool {
	return s.runeAt(x, y) == '#'
}

// MoveCost returns the cost of entering (x, y): the terrain table value
// for its rune, or 1 when unlisted. Walls have no cost; callers filter
// them through Blocked first.
func (s *Scenario) MoveCost(x, y int) int {
	r := s.runeAt(x, y)
	if cost, ok := s.Terrain[string(r)]; ok && cost > 0 {
		return cost
	}
	return 1
}
