// Package fovmode is the visibility sandbox: walk a viewer through a
// walled map, drop light sources, and flip between the shadowcasting
// and ray-marching algorithms to compare their output.
package fovmode

import (
	"fmt"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/fov"
	"github.com/vovakirdan/gridkit/internal/core"
	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/internal/scenario"
)

const viewRadius = 8

// lightRamp maps a light level in [0, 1] to a floor glyph, dimmest first.
var lightRamp = []rune{'·', ':', '-', '=', '+', '*'}

// Mode implements the visibility lab on an 8-connected square grid.
type Mode struct {
	w, h   int
	walls  map[coord.Square8]bool
	viewer coord.Square8
	lights []fov.Light[coord.Square8]
	algo   fov.Algorithm

	visible fov.Result[coord.Square8]
	lit     fov.LightMap[coord.Square8]
	dirty   bool
	paused  bool

	hudHeight int
}

// New creates a visibility mode.
func New() *Mode {
	return &Mode{}
}

func init() {
	registry.Register("fov", func() registry.Mode {
		return New()
	})
}

// ID returns the mode identifier.
func (m *Mode) ID() string {
	return "fov"
}

// Title returns the display name.
func (m *Mode) Title() string {
	return "Visibility"
}

// Reset initializes the mode with an empty map sized to the screen.
func (m *Mode) Reset(cfg core.RuntimeConfig) {
	m.hudHeight = 2
	m.w = core.Clamp(cfg.ScreenW/2, 8, 40)
	m.h = core.Clamp(cfg.ScreenH-m.hudHeight-1, 6, 30)
	m.walls = make(map[coord.Square8]bool)
	m.viewer = coord.Sq8(m.w/2, m.h/2)
	m.lights = nil
	m.algo = fov.Shadowcast
	m.paused = false
	m.compute()
	m.dirty = false
}

// ApplyScenario replaces the map with a scenario's walls and lights.
// Hex scenarios degrade to their square footprint here; the square8
// metric is this mode's fixed topology.
func (m *Mode) ApplyScenario(s *scenario.Scenario) {
	m.w, m.h = s.Width, s.Height
	m.walls = make(map[coord.Square8]bool)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.Blocked(x, y) {
				m.walls[coord.Sq8(x, y)] = true
			}
		}
	}
	m.lights = nil
	for _, l := range s.Lights {
		m.lights = append(m.lights, fov.Light[coord.Square8]{
			Pos:       coord.Sq8(l.X, l.Y),
			Radius:    l.Radius,
			Intensity: l.Intensity,
		})
	}
	if s.Start != nil {
		m.viewer = coord.Sq8(s.Start.X, s.Start.Y)
	} else {
		m.viewer = coord.Sq8(m.w/2, m.h/2)
	}
	m.compute()
	m.dirty = false
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

	m.moveViewer(input)

	switch {
	case input.Has(core.ActionPaint):
		if m.viewer != m.frontCell() {
			m.walls[m.frontCell()] = true
			m.dirty = true
		}
	case input.Has(core.ActionErase):
		if m.walls[m.frontCell()] {
			delete(m.walls, m.frontCell())
			m.dirty = true
		}
	case input.Has(core.ActionMark):
		m.toggleLight()
	case input.Has(core.ActionCycle):
		if m.algo == fov.Shadowcast {
			m.algo = fov.RayMarch
		} else {
			m.algo = fov.Shadowcast
		}
		m.dirty = true
	}

	if m.dirty {
		m.compute()
		m.dirty = false
	}
	return core.StepResult{State: m.State()}
}

// frontCell is the cell right of the viewer, the paint target. Painting
// at arm's length keeps the viewer out of its own wall.
func (m *Mode) frontCell() coord.Square8 {
	c := m.viewer.Shift(1, 0)
	if c.X >= m.w {
		c = m.viewer
	}
	return c
}

func (m *Mode) moveViewer(input core.InputFrame) {
	v := m.viewer
	if input.Has(core.ActionUp) {
		v = v.Shift(0, -1)
	}
	if input.Has(core.ActionDown) {
		v = v.Shift(0, 1)
	}
	if input.Has(core.ActionLeft) {
		v = v.Shift(-1, 0)
	}
	if input.Has(core.ActionRight) {
		v = v.Shift(1, 0)
	}
	v = coord.Sq8(core.Clamp(v.X, 0, m.w-1), core.Clamp(v.Y, 0, m.h-1))
	if v != m.viewer && !m.walls[v] {
		m.viewer = v
		m.dirty = true
	}
}

// toggleLight removes a light under the viewer, or places one there.
func (m *Mode) toggleLight() {
	for i, l := range m.lights {
		if l.Pos == m.viewer {
			m.lights = append(m.lights[:i], m.lights[i+1:]...)
			m.dirty = true
			return
		}
	}
	m.lights = append(m.lights, fov.Light[coord.Square8]{
		Pos:       m.viewer,
		Radius:    6,
		Intensity: 1,
	})
	m.dirty = true
}

func (m *Mode) opaque(c coord.Square8) bool {
	return m.walls[c]
}

func (m *Mode) compute() {
	m.visible = fov.Compute(m.viewer, viewRadius, m.opaque, m.algo)
	m.lit = fov.Illuminate(m.lights, m.opaque)
}

// Render draws the current state.
func (m *Mode) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(0, 0, fmt.Sprintf(" FOV — %s  visible %d  lights %d",
		m.algo, m.visible.Len(), len(m.lights)))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			c := coord.Sq8(x, y)
			sx, sy := x*2, y+m.hudHeight
			if !m.visible.Visible(c) {
				continue // unseen cells stay dark
			}
			if m.walls[c] {
				dst.SetCell(sx, sy, core.Cell{Rune: '█', Color: core.ColorGray})
				continue
			}
			level := m.lit.LevelAt(c)
			idx := int(level * float64(len(lightRamp)-1))
			glyph := lightRamp[core.Clamp(idx, 0, len(lightRamp)-1)]
			col := core.ColorGray
			if level > 0.66 {
				col = core.ColorBrightYellow
			} else if level > 0.33 {
				col = core.ColorYellow
			}
			dst.SetCell(sx, sy, core.Cell{Rune: glyph, Color: col})
		}
	}

	for _, l := range m.lights {
		if m.visible.Visible(l.Pos) {
			dst.SetCell(l.Pos.X*2, l.Pos.Y+m.hudHeight,
				core.Cell{Rune: '☼', Color: core.ColorBrightYellow})
		}
	}
	dst.SetCell(m.viewer.X*2, m.viewer.Y+m.hudHeight,
		core.Cell{Rune: '@', Color: core.ColorBrightWhite})
}

// State returns the current mode state.
func (m *Mode) State() core.ModeState {
	return core.ModeState{
		Status: fmt.Sprintf("algo=%s visible=%d lights=%d", m.algo, m.visible.Len(), len(m.lights)),
		Paused: m.paused,
	}
}
