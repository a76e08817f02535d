// Package pathmode is the interactive pathfinding sandbox: paint walls,
// move the start and goal markers, and watch the A* path update live
// across square and hex topologies.
package pathmode

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/internal/core"
	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/internal/scenario"
	"github.com/vovakirdan/gridkit/pathfind"
)

type topology int

const (
	topoSquare4 topology = iota
	topoSquare8
	topoHex
	topoCount
)

func (t topology) String() string {
	switch t {
	case topoSquare8:
		return scenario.TopologySquare8
	case topoHex:
		return scenario.TopologyHex
	default:
		return scenario.TopologySquare4
	}
}

// cell is a topology-neutral position: x/y for squares, q/r for hex.
type cell struct {
	X, Y int
}

// Mode implements the pathfinding lab.
type Mode struct {
	w, h   int
	walls  map[cell]bool
	costs  map[cell]int
	topo   topology
	cursor cell
	start  cell
	goal   cell

	// Mark alternates between placing the start and the goal.
	markGoal bool

	path    []cell
	cost    int
	pathErr error
	dirty   bool
	paused  bool

	hudHeight int
}

// New creates a pathfinding mode.
func New() *Mode {
	return &Mode{}
}

func init() {
	registry.Register("path", func() registry.Mode {
		return New()
	})
}

// ID returns the mode identifier.
func (m *Mode) ID() string {
	return "path"
}

// Title returns the display name.
func (m *Mode) Title() string {
	return "Pathfinding"
}

// Reset initializes the mode with an empty map sized to the screen.
func (m *Mode) Reset(cfg core.RuntimeConfig) {
	m.hudHeight = 2
	m.w = core.Clamp(cfg.ScreenW/2, 8, 40)
	m.h = core.Clamp(cfg.ScreenH-m.hudHeight-1, 6, 30)
	m.walls = make(map[cell]bool)
	m.costs = make(map[cell]int)
	m.topo = topoSquare4
	m.start = cell{X: 1, Y: 1}
	m.goal = cell{X: m.w - 2, Y: m.h - 2}
	m.cursor = m.start
	m.markGoal = false
	m.paused = false
	m.dirty = true
}

// ApplyScenario replaces the map with a scenario's walls, terrain, and
// markers.
func (m *Mode) ApplyScenario(s *scenario.Scenario) {
	switch s.Topology {
	case scenario.TopologySquare8:
		m.topo = topoSquare8
	case scenario.TopologyHex:
		m.topo = topoHex
	default:
		m.topo = topoSquare4
	}
	m.w, m.h = s.Width, s.Height
	m.walls = make(map[cell]bool)
	m.costs = make(map[cell]int)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.Blocked(x, y) {
				m.walls[cell{X: x, Y: y}] = true
			} else if c := s.MoveCost(x, y); c > 1 {
				m.costs[cell{X: x, Y: y}] = c
			}
		}
	}
	if s.Start != nil {
		m.start = cell{X: s.Start.X, Y: s.Start.Y}
	} else {
		m.start = cell{X: 1, Y: 1}
	}
	if len(s.Goals) > 0 {
		m.goal = cell{X: s.Goals[0].X, Y: s.Goals[0].Y}
	} else {
		m.goal = cell{X: m.w - 2, Y: m.h - 2}
	}
	m.cursor = m.start
	m.dirty = true
}

// Step advances the mode by one tick.
func (m *Mode) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		m.Reset(core.RuntimeConfig{ScreenW: m.w * 2, ScreenH: m.h + m.hudHeight + 1})
		return core.StepResult{State: m.State()}
	}
	if input.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.paused {
		return core.StepResult{State: m.State()}
	}

	m.moveCursor(input)

	switch {
	case input.Has(core.ActionPaint):
		if m.cursor != m.start && m.cursor != m.goal {
			m.walls[m.cursor] = true
			m.dirty = true
		}
	case input.Has(core.ActionErase):
		if m.walls[m.cursor] {
			delete(m.walls, m.cursor)
			m.dirty = true
		}
	case input.Has(core.ActionMark):
		if !m.walls[m.cursor] {
			if m.markGoal {
				m.goal = m.cursor
			} else {
				m.start = m.cursor
			}
			m.markGoal = !m.markGoal
			m.dirty = true
		}
	case input.Has(core.ActionCycle):
		m.topo = (m.topo + 1) % topoCount
		m.dirty = true
	}

	if m.dirty {
		m.compute()
		m.dirty = false
	}
	return core.StepResult{State: m.State()}
}

func (m *Mode) moveCursor(input core.InputFrame) {
	c := m.cursor
	if input.Has(core.ActionUp) {
		c.Y--
	}
	if input.Has(core.ActionDown) {
		c.Y++
	}
	if input.Has(core.ActionLeft) {
		c.X--
	}
	if input.Has(core.ActionRight) {
		c.X++
	}
	c.X = core.Clamp(c.X, 0, m.w-1)
	c.Y = core.Clamp(c.Y, 0, m.h-1)
	m.cursor = c
}

// open reports whether the map cell is in bounds and not a wall.
func (m *Mode) open(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return !m.walls[cell{X: x, Y: y}]
}

// enterCost returns the terrain cost of stepping into (x, y).
func (m *Mode) enterCost(x, y int) int {
	if c, ok := m.costs[cell{X: x, Y: y}]; ok {
		return c
	}
	return 1
}

// compute reruns the search for the current topology. Each branch
// instantiates the generic pathfinder with a concrete coordinate type.
func (m *Mode) compute() {
	switch m.topo {
	case topoSquare8:
		m.path, m.cost, m.pathErr = findPath(
			coord.Sq8(m.start.X, m.start.Y), coord.Sq8(m.goal.X, m.goal.Y), m)
	case topoHex:
		m.path, m.cost, m.pathErr = findPath(
			coord.Hx(m.start.X, m.start.Y), coord.Hx(m.goal.X, m.goal.Y), m)
	default:
		m.path, m.cost, m.pathErr = findPath(
			coord.Sq4(m.start.X, m.start.Y), coord.Sq4(m.goal.X, m.goal.Y), m)
	}
}

// findPath runs one typed search and flattens the result back to
// topology-neutral cells for rendering.
func findPath[C coord.Coord[C]](start, goal C, m *Mode) ([]cell, int, error) {
	res, err := pathfind.Find(pathfind.Query[C]{
		Start: start,
		Goals: []C{goal},
		Passable: func(c C) bool {
			x, y := c.Unpack()
			return m.open(x, y)
		},
		Cost: func(_, to C) int {
			x, y := to.Unpack()
			return m.enterCost(x, y)
		},
	})
	if err != nil {
		return nil, 0, err
	}
	path := make([]cell, len(res.Path))
	for i, c := range res.Path {
		x, y := c.Unpack()
		path[i] = cell{X: x, Y: y}
	}
	return path, res.Cost, nil
}

// screenPos maps a map cell to screen coordinates. Squares double the
// column for a near-square aspect; hex rows stagger right to suggest
// the axial skew.
func (m *Mode) screenPos(c cell) (int, int) {
	if m.topo == topoHex {
		return c.X*2 + c.Y, c.Y + m.hudHeight
	}
	return c.X * 2, c.Y + m.hudHeight
}

// Render draws the current state.
func (m *Mode) Render(dst *core.Screen) {
	dst.Clear()

	status := fmt.Sprintf(" Path — %s  ", m.topo)
	switch {
	case m.pathErr != nil:
		status += "no path"
	default:
		status += fmt.Sprintf("cost %d, %d cells", m.cost, len(m.path))
	}
	dst.DrawText(0, 0, status)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			c := cell{X: x, Y: y}
			sx, sy := m.screenPos(c)
			switch {
			case m.walls[c]:
				dst.SetCell(sx, sy, core.Cell{Rune: '█', Color: core.ColorGray})
			case m.costs[c] > 1:
				dst.SetCell(sx, sy, core.Cell{Rune: '~', Color: core.ColorCyan})
			default:
				dst.SetCell(sx, sy, core.Cell{Rune: '·', Color: core.ColorGray})
			}
		}
	}

	for _, c := range m.path {
		sx, sy := m.screenPos(c)
		dst.SetCell(sx, sy, core.Cell{Rune: '•', Color: core.ColorBrightYellow})
	}

	sx, sy := m.screenPos(m.start)
	dst.SetCell(sx, sy, core.Cell{Rune: 'S', Color: core.ColorBrightGreen})
	sx, sy = m.screenPos(m.goal)
	dst.SetCell(sx, sy, core.Cell{Rune: 'G', Color: core.ColorBrightRed})
	sx, sy = m.screenPos(m.cursor)
	dst.SetCell(sx, sy, core.Cell{Rune: '+', Color: core.ColorBrightWhite})
}

// State returns the current mode state.
func (m *Mode) State() core.ModeState {
	status := fmt.Sprintf("topology=%s", m.topo)
	switch {
	case errors.Is(m.pathErr, pathfind.ErrNoPath):
		status += " no-path"
	case m.pathErr == nil && len(m.path) > 0:
		status += fmt.Sprintf(" cost=%d", m.cost)
	}
	return core.ModeState{Status: status, Paused: m.paused}
}
