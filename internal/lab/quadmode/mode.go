// Package quadmode is the spatial-index sandbox: entities drift with
// random velocities through a quadtree while a query circle follows the
// cursor, with the tree's leaf boundaries drawn live.
package quadmode

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/internal/core"
	"github.com/vovakirdan/gridkit/internal/registry"
	"github.com/vovakirdan/gridkit/spatial"
)

const queryRadius = 7.0

type entity struct {
	id  spatial.ID
	pos coord.Pixel
	vel coord.Pixel
}

// Mode implements the quadtree lab.
type Mode struct {
	rng      *rand.Rand
	w, h     int
	tree     *spatial.Quadtree
	entities []entity
	cursor   coord.Pixel
	hits     map[spatial.ID]bool
	paused   bool

	hudHeight int
}

// New creates a quadtree mode.
func New() *Mode {
	return &Mode{}
}

func init() {
	registry.Register("quad", func() registry.Mode {
		return New()
	})
}

// ID returns the mode identifier.
func (m *Mode) ID() string {
	return "quad"
}

// Title returns the display name.
func (m *Mode) Title() string {
	return "Quadtree"
}

// Reset initializes the world and seeds the drifting entities.
func (m *Mode) Reset(cfg core.RuntimeConfig) {
	m.hudHeight = 2
	m.w = core.Clamp(cfg.ScreenW/2, 16, 60)
	m.h = core.Clamp(cfg.ScreenH-m.hudHeight-1, 10, 40)
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	m.rng = rand.New(rand.NewSource(seed))
	m.tree = spatial.NewQuadtree(spatial.NewRect(0, 0, float64(m.w), float64(m.h)), 4)
	m.entities = m.entities[:0]
	for i := 0; i < 40; i++ {
		e := entity{
			id: spatial.ID(i + 1),
			pos: coord.Pixel{
				X: m.rng.Float64() * float64(m.w),
				Y: m.rng.Float64() * float64(m.h),
			},
			vel: coord.Pixel{
				X: (m.rng.Float64() - 0.5) * 0.6,
				Y: (m.rng.Float64() - 0.5) * 0.6,
			},
		}
		m.tree.Insert(e.id, e.pos)
		m.entities = append(m.entities, e)
	}
	m.cursor = coord.Pixel{X: float64(m.w) / 2, Y: float64(m.h) / 2}
	m.hits = make(map[spatial.ID]bool)
	m.paused = false
	m.query()
}

// Step advances the mode by one tick.
func (m *Mode) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		m.Reset(core.RuntimeConfig{
			ScreenW: m.w * 2,
			ScreenH: m.h + m.hudHeight + 1,
			Seed:    m.rng.Int63(),
		})
		return core.StepResult{State: m.State()}
	}
	if input.Has(core.ActionPause) {
		m.paused = !m.paused
	}

	m.moveCursor(input)

	if input.Has(core.ActionCycle) {
		m.spawn()
	}

	if !m.paused {
		m.drift()
	}
	m.query()
	return core.StepResult{State: m.State()}
}

func (m *Mode) moveCursor(input core.InputFrame) {
	if input.Has(core.ActionUp) {
		m.cursor.Y--
	}
	if input.Has(core.ActionDown) {
		m.cursor.Y++
	}
	if input.Has(core.ActionLeft) {
		m.cursor.X--
	}
	if input.Has(core.ActionRight) {
		m.cursor.X++
	}
	m.cursor.X = core.ClampF(m.cursor.X, 0, float64(m.w)-1)
	m.cursor.Y = core.ClampF(m.cursor.Y, 0, float64(m.h)-1)
}

func (m *Mode) spawn() {
	e := entity{
		id:  spatial.ID(len(m.entities) + 1),
		pos: m.cursor,
		vel: coord.Pixel{
			X: (m.rng.Float64() - 0.5) * 0.6,
			Y: (m.rng.Float64() - 0.5) * 0.6,
		},
	}
	if m.tree.Insert(e.id, e.pos) == nil {
		m.entities = append(m.entities, e)
	}
}

// drift moves every entity by its velocity, bouncing off the root
// bounds, and keeps the index in sync through Update.
func (m *Mode) drift() {
	maxX, maxY := float64(m.w), float64(m.h)
	for i := range m.entities {
		e := &m.entities[i]
		e.pos = e.pos.Add(e.vel)
		if e.pos.X < 0 {
			e.pos.X, e.vel.X = -e.pos.X, -e.vel.X
		}
		if e.pos.Y < 0 {
			e.pos.Y, e.vel.Y = -e.pos.Y, -e.vel.Y
		}
		if e.pos.X >= maxX {
			e.pos.X, e.vel.X = 2*maxX-e.pos.X-0.001, -e.vel.X
		}
		if e.pos.Y >= maxY {
			e.pos.Y, e.vel.Y = 2*maxY-e.pos.Y-0.001, -e.vel.Y
		}
		m.tree.Update(e.id, e.pos)
	}
}

func (m *Mode) query() {
	for id := range m.hits {
		delete(m.hits, id)
	}
	for _, id := range m.tree.QueryCircle(m.cursor, queryRadius) {
		m.hits[id] = true
	}
}

// Render draws leaf boundaries, entities, and the query circle.
func (m *Mode) Render(dst *core.Screen) {
	dst.Clear()

	stats := m.tree.Stats()
	dst.DrawText(0, 0, fmt.Sprintf(" Quadtree — %d entities  %d nodes (%d leaves)  depth %d  hits %d",
		stats.Entities, stats.Nodes, stats.Leaves, stats.MaxDepth, len(m.hits)))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	// Root bounds first, then leaf outlines, so entities draw over both.
	dst.DrawBox(core.NewRect(0, m.hudHeight, m.w*2, m.h))
	m.tree.VisitBounds(func(b spatial.Rect, depth int, leaf bool) {
		if !leaf || depth == 0 {
			return
		}
		x, y := int(b.X)*2, int(b.Y)+m.hudHeight
		w, h := int(b.W)*2, int(b.H)
		dst.DrawHLine(x, y, w, '┄')
		dst.DrawVLine(x, y, h, '┆')
	})

	for _, e := range m.entities {
		sx, sy := int(e.pos.X)*2, int(e.pos.Y)+m.hudHeight
		cell := core.Cell{Rune: '•', Color: core.ColorBlue}
		if m.hits[e.id] {
			cell = core.Cell{Rune: '●', Color: core.ColorBrightGreen}
		}
		dst.SetCell(sx, sy, cell)
	}

	dst.SetCell(int(m.cursor.X)*2, int(m.cursor.Y)+m.hudHeight,
		core.Cell{Rune: '+', Color: core.ColorBrightWhite})
}

// State returns the current mode state.
func (m *Mode) State() core.ModeState {
	stats := m.tree.Stats()
	return core.ModeState{
		Status: fmt.Sprintf("entities=%d nodes=%d depth=%d hits=%d",
			stats.Entities, stats.Nodes, stats.MaxDepth, len(m.hits)),
		Paused: m.paused,
	}
}
