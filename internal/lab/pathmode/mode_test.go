package pathmode

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridkit/internal/core"
	"github.com/vovakirdan/gridkit/internal/scenario"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newMode() *Mode {
	m := New()
	m.Reset(core.DefaultConfig())
	return m
}

func TestResetComputesPath(t *testing.T) {
	m := newMode()
	m.Step(press())

	if m.pathErr != nil {
		t.Fatalf("open map should have a path, got %v", m.pathErr)
	}
	if len(m.path) == 0 {
		t.Fatal("path is empty")
	}
	if m.path[0] != m.start || m.path[len(m.path)-1] != m.goal {
		t.Errorf("path endpoints %v..%v, want %v..%v",
			m.path[0], m.path[len(m.path)-1], m.start, m.goal)
	}
	// 4-connected: cost equals Manhattan distance on an open map.
	want := core.Abs(m.goal.X-m.start.X) + core.Abs(m.goal.Y-m.start.Y)
	if m.cost != want {
		t.Errorf("cost = %d, want %d", m.cost, want)
	}
}

func TestPaintWallReroutes(t *testing.T) {
	m := newMode()
	m.Step(press())
	openCost := m.cost

	// Build a wall column with one gap right of the start.
	wx := m.start.X + 2
	for y := 0; y < m.h; y++ {
		if y != m.h-1 {
			m.walls[cell{X: wx, Y: y}] = true
		}
	}
	m.dirty = true
	m.Step(press())

	if m.pathErr != nil {
		t.Fatalf("gap should keep the goal reachable, got %v", m.pathErr)
	}
	if m.cost <= openCost {
		t.Errorf("detour cost %d should exceed open cost %d", m.cost, openCost)
	}
	for _, c := range m.path {
		if m.walls[c] {
			t.Fatalf("path crosses wall at %v", c)
		}
	}
}

func TestSealedGoalReportsNoPath(t *testing.T) {
	m := newMode()
	for _, n := range []cell{
		{X: m.goal.X - 1, Y: m.goal.Y},
		{X: m.goal.X + 1, Y: m.goal.Y},
		{X: m.goal.X, Y: m.goal.Y - 1},
		{X: m.goal.X, Y: m.goal.Y + 1},
	} {
		m.walls[n] = true
	}
	m.dirty = true
	m.Step(press())

	if m.pathErr == nil {
		t.Error("sealed goal should report an error")
	}
	if !strings.Contains(m.State().Status, "no-path") {
		t.Errorf("status %q should mention no-path", m.State().Status)
	}
}

func TestCycleTopology(t *testing.T) {
	m := newMode()
	m.Step(press())
	four := m.cost

	m.Step(press(core.ActionCycle))
	if m.topo != topoSquare8 {
		t.Fatalf("topology after cycle = %v, want square8", m.topo)
	}
	// Diagonals make the 8-connected path no longer than the 4-connected.
	if m.cost > four {
		t.Errorf("square8 cost %d should not exceed square4 cost %d", m.cost, four)
	}

	m.Step(press(core.ActionCycle))
	if m.topo != topoHex {
		t.Fatalf("topology after two cycles = %v, want hex", m.topo)
	}
	if m.pathErr != nil {
		t.Errorf("hex search failed: %v", m.pathErr)
	}

	m.Step(press(core.ActionCycle))
	if m.topo != topoSquare4 {
		t.Errorf("topology should wrap back to square4, got %v", m.topo)
	}
}

func TestMarkMovesStartThenGoal(t *testing.T) {
	m := newMode()

	m.Step(press(core.ActionRight, core.ActionMark))
	if m.start != m.cursor {
		t.Errorf("first mark should move the start, start=%v cursor=%v", m.start, m.cursor)
	}
	m.Step(press(core.ActionRight, core.ActionMark))
	if m.goal != m.cursor {
		t.Errorf("second mark should move the goal, goal=%v cursor=%v", m.goal, m.cursor)
	}
}

func TestApplyScenario(t *testing.T) {
	s, err := scenario.Load("crossing")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	m := newMode()
	m.ApplyScenario(s)
	m.Step(press())

	if m.w != s.Width || m.h != s.Height {
		t.Errorf("dims = %dx%d, want %dx%d", m.w, m.h, s.Width, s.Height)
	}
	if m.pathErr != nil {
		t.Fatalf("crossing scenario should be solvable: %v", m.pathErr)
	}
	// The only gap in the wall row is at x=10; the path must use it.
	usesGap := false
	for _, c := range m.path {
		if c == (cell{X: 10, Y: 6}) {
			usesGap = true
		}
	}
	if !usesGap {
		t.Error("path should pass through the wall gap at (10, 6)")
	}
}

func TestRenderMarkersVisible(t *testing.T) {
	m := newMode()
	m.Step(press())

	scr := core.NewScreen(80, 24)
	m.Render(scr)

	out := scr.String()
	for _, want := range []string{"S", "G"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}
