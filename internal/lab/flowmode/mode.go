// Package flowmode is the flow-field sandbox: place goals, spawn
// agents, and watch them stream toward the nearest goal along the
// integration field, rerouting live as walls are painted.
package flowmode

import (
	"fmt"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/flowfield"
	"github.com/vovakirdan/gridkit/grid"
	"github.com/vovakirdan/gridkit/internal/core"
	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/internal/scenario"
)

// Mode implements the flow-field lab on a 4-connected square grid.
type Mode struct {
	world  *grid.Grid[coord.Square4, bool] // true = wall
	w, h   int
	goals  []coord.Square4
	agents []coord.Square4
	cursor coord.Square4

	field   *flowfield.Field[coord.Square4]
	arrived int
	paused  bool

	// moveEveryTicks throttles agent movement below the input rate so
	// individual steps are watchable.
	moveEveryTicks int
	moveTicker     int

	hudHeight int
}

// New creates a flow-field mode.
func New() *Mode {
	return &Mode{}
}

func init() {
	registry.Register("flow", func() registry.Mode {
		return New()
	})
}

// ID returns the mode identifier.
func (m *Mode) ID() string {
	return "flow"
}

// Title returns the display name.
func (m *Mode) Title() string {
	return "Flow Field"
}

// Reset initializes the mode with an empty map sized to the screen.
func (m *Mode) Reset(cfg core.RuntimeConfig) {
	m.hudHeight = 2
	m.w = core.Clamp(cfg.ScreenW/2, 8, 40)
	m.h = core.Clamp(cfg.ScreenH-m.hudHeight-1, 6, 30)
	m.world, _ = grid.New(coord.Sq4(0, 0), m.w, m.h, false)
	m.goals = []coord.Square4{coord.Sq4(m.w-2, m.h/2)}
	m.agents = nil
	m.cursor = coord.Sq4(1, m.h/2)
	m.arrived = 0
	m.paused = false
	m.moveEveryTicks = 4
	m.moveTicker = 0
	m.rebuild()
}

// ApplyScenario replaces the map with a scenario's walls and goals.
func (m *Mode) ApplyScenario(s *scenario.Scenario) {
	m.w, m.h = s.Width, s.Height
	m.world, _ = grid.NewFunc(coord.Sq4(0, 0), m.w, m.h, func(c coord.Square4) bool {
		return s.Blocked(c.X, c.Y)
	})
	m.goals = nil
	for _, g := range s.Goals {
		m.goals = append(m.goals, coord.Sq4(g.X, g.Y))
	}
	if len(m.goals) == 0 {
		m.goals = []coord.Square4{coord.Sq4(m.w - 2, m.h/2)}
	}
	m.agents = nil
	m.arrived = 0
	if s.Start != nil {
		m.cursor = coord.Sq4(s.Start.X, s.Start.Y)
		m.agents = append(m.agents, m.cursor)
	} else {
		m.cursor = coord.Sq4(1, m.h/2)
	}
	m.rebuild()
}

func (m *Mode) passable(c coord.Square4) bool {
	wall, err := m.world.At(c)
	return err == nil && !wall
}

func (m *Mode) rebuild() {
	field, err := flowfield.Build(m.world, m.goals, m.passable, nil)
	if err != nil {
		m.field = nil
		return
	}
	m.field = field
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

	m.moveCursor(input)

	switch {
	case input.Has(core.ActionPaint):
		if m.world.Set(m.cursor, true) == nil && m.field != nil {
			m.field.MarkDirty(m.cursor)
		}
	case input.Has(core.ActionErase):
		if m.world.Set(m.cursor, false) == nil && m.field != nil {
			m.field.MarkDirty(m.cursor)
		}
	case input.Has(core.ActionMark):
		m.toggleGoal()
	case input.Has(core.ActionCycle):
		if m.passable(m.cursor) {
			m.agents = append(m.agents, m.cursor)
		}
	}

	if m.field == nil || !m.field.Valid() {
		m.rebuild()
	}

	if !m.paused {
		m.moveTicker++
		if m.moveTicker >= m.moveEveryTicks {
			m.moveTicker = 0
			m.moveAgents()
		}
	}
	return core.StepResult{State: m.State()}
}

func (m *Mode) moveCursor(input core.InputFrame) {
	c := m.cursor
	if input.Has(core.ActionUp) {
		c = c.Shift(0, -1)
	}
	if input.Has(core.ActionDown) {
		c = c.Shift(0, 1)
	}
	if input.Has(core.ActionLeft) {
		c = c.Shift(-1, 0)
	}
	if input.Has(core.ActionRight) {
		c = c.Shift(1, 0)
	}
	m.cursor = coord.Sq4(core.Clamp(c.X, 0, m.w-1), core.Clamp(c.Y, 0, m.h-1))
}

// toggleGoal removes a goal under the cursor, or adds one there. The
// last goal cannot be removed; the field needs at least one.
func (m *Mode) toggleGoal() {
	for i, g := range m.goals {
		if g == m.cursor {
			if len(m.goals) > 1 {
				m.goals = append(m.goals[:i], m.goals[i+1:]...)
				m.rebuild()
			}
			return
		}
	}
	if m.passable(m.cursor) {
		m.goals = append(m.goals, m.cursor)
		m.rebuild()
	}
}

// moveAgents advances every agent one field step. Agents on goals are
// retired into the arrived count.
func (m *Mode) moveAgents() {
	if m.field == nil {
		return
	}
	kept := m.agents[:0]
	for _, a := range m.agents {
		if m.field.IsGoal(a) {
			m.arrived++
			continue
		}
		if next, ok := m.field.DirectionAt(a); ok {
			a = next
		}
		kept = append(kept, a)
	}
	m.agents = kept
}

// Render draws the current state.
func (m *Mode) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(0, 0, fmt.Sprintf(" Flow — agents %d  arrived %d  goals %d",
		len(m.agents), m.arrived, len(m.goals)))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	for c, wall := range m.world.All() {
		sx, sy := c.X*2, c.Y+m.hudHeight
		if wall {
			dst.SetCell(sx, sy, core.Cell{Rune: '█', Color: core.ColorGray})
			continue
		}
		glyph, col := '·', core.ColorGray
		if m.field != nil {
			if cost, ok := m.field.CostAt(c); ok {
				// Shade by distance band so the field gradient reads at
				// a glance.
				switch {
				case cost < 8:
					col = core.ColorBrightBlue
				case cost < 16:
					col = core.ColorBlue
				default:
					col = core.ColorGray
				}
			} else {
				glyph = '×' // unreachable pocket
			}
		}
		dst.SetCell(sx, sy, core.Cell{Rune: glyph, Color: col})
	}

	for _, g := range m.goals {
		dst.SetCell(g.X*2, g.Y+m.hudHeight, core.Cell{Rune: 'G', Color: core.ColorBrightRed})
	}
	for _, a := range m.agents {
		dst.SetCell(a.X*2, a.Y+m.hudHeight, core.Cell{Rune: 'o', Color: core.ColorBrightGreen})
	}
	dst.SetCell(m.cursor.X*2, m.cursor.Y+m.hudHeight, core.Cell{Rune: '+', Color: core.ColorBrightWhite})
}

// State returns the current mode state.
func (m *Mode) State() core.ModeState {
	return core.ModeState{
		Status: fmt.Sprintf("agents=%d arrived=%d goals=%d", len(m.agents), m.arrived, len(m.goals)),
		Paused: m.paused,
	}
}
