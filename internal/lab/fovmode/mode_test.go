package fovmode

import (
	"testing"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/fov"
	"github.com/vovakirdan/gridkit/internal/core"
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

func TestResetComputesVisibility(t *testing.T) {
	m := newMode()

	if !m.visible.Visible(m.viewer) {
		t.Error("viewer cell should be visible")
	}
	// Open map: every cell within the view radius is seen.
	edge := m.viewer.Shift(viewRadius, 0)
	if edge.X < m.w && !m.visible.Visible(edge) {
		t.Errorf("open cell %v within radius should be visible", edge)
	}
	beyond := m.viewer.Shift(viewRadius+1, 0)
	if beyond.X < m.w && m.visible.Visible(beyond) {
		t.Errorf("cell %v beyond radius should not be visible", beyond)
	}
}

func TestPaintedWallCastsShadow(t *testing.T) {
	m := newMode()

	// The paint target sits right of the viewer; the cell behind it
	// falls into its shadow.
	m.Step(press(core.ActionPaint))

	wall := m.viewer.Shift(1, 0)
	behind := m.viewer.Shift(2, 0)
	if !m.walls[wall] {
		t.Fatal("paint should wall the front cell")
	}
	if !m.visible.Visible(wall) {
		t.Error("the wall face itself should be visible")
	}
	if m.visible.Visible(behind) {
		t.Errorf("cell %v behind the wall should be shadowed", behind)
	}
}

func TestEraseRestoresSight(t *testing.T) {
	m := newMode()
	behind := m.viewer.Shift(2, 0)

	m.Step(press(core.ActionPaint))
	if m.visible.Visible(behind) {
		t.Fatal("wall should block sight before erase")
	}

	m.Step(press(core.ActionErase))
	if m.walls[m.viewer.Shift(1, 0)] {
		t.Fatal("erase should clear the front cell")
	}
	if !m.visible.Visible(behind) {
		t.Errorf("cell %v should be visible again after erase", behind)
	}
}

func TestViewerBlockedByWall(t *testing.T) {
	m := newMode()
	m.walls[m.viewer.Shift(1, 0)] = true

	before := m.viewer
	m.Step(press(core.ActionRight))
	if m.viewer != before {
		t.Errorf("viewer walked into a wall: %v -> %v", before, m.viewer)
	}

	m.Step(press(core.ActionLeft))
	if m.viewer == before {
		t.Error("viewer should still move along open cells")
	}
}

func TestToggleLightIlluminates(t *testing.T) {
	m := newMode()

	m.Step(press(core.ActionMark))
	if len(m.lights) != 1 {
		t.Fatalf("lights = %d, want 1", len(m.lights))
	}
	if level := m.lit.LevelAt(m.viewer); level <= 0 {
		t.Errorf("light source cell level = %v, want > 0", level)
	}
	// Falloff: farther cells get less light.
	nearer := m.lit.LevelAt(m.viewer.Shift(1, 0))
	farther := m.lit.LevelAt(m.viewer.Shift(4, 0))
	if farther >= nearer {
		t.Errorf("light should fall off with distance: near %v, far %v", nearer, farther)
	}

	m.Step(press(core.ActionMark))
	if len(m.lights) != 0 {
		t.Errorf("second mark should remove the light, lights = %v", m.lights)
	}
	if level := m.lit.LevelAt(m.viewer); level != 0 {
		t.Errorf("level after removal = %v, want 0", level)
	}
}

func TestCycleSwitchesAlgorithm(t *testing.T) {
	m := newMode()

	m.Step(press(core.ActionCycle))
	if m.algo != fov.RayMarch {
		t.Fatalf("algo = %v, want RayMarch", m.algo)
	}
	if !m.visible.Visible(m.viewer) {
		t.Error("ray march should still see the viewer cell")
	}

	m.Step(press(core.ActionCycle))
	if m.algo != fov.Shadowcast {
		t.Errorf("algo = %v, want Shadowcast", m.algo)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	m := newMode()
	before := m.viewer

	m.Step(press(core.ActionPause))
	m.Step(press(core.ActionRight))

	if m.viewer != before {
		t.Errorf("viewer moved while paused: %v -> %v", before, m.viewer)
	}
	if !m.State().Paused {
		t.Error("state should report paused")
	}

	m.Step(press(core.ActionPause))
	m.Step(press(core.ActionRight))
	if m.viewer == before {
		t.Error("viewer should move after unpause")
	}
}

func TestRenderShowsViewer(t *testing.T) {
	m := newMode()
	scr := core.NewScreen(80, 24)
	m.Render(scr)

	if got := scr.GetCell(m.viewer.X*2, m.viewer.Y+m.hudHeight); got.Rune != '@' {
		t.Errorf("viewer glyph = %q, want '@'", got.Rune)
	}
}

func TestWallLevelsIgnoredByRamp(t *testing.T) {
	m := newMode()
	m.walls[coord.Sq8(m.viewer.X+1, m.viewer.Y)] = true
	m.dirty = true
	m.Step(press())

	scr := core.NewScreen(80, 24)
	m.Render(scr)
	if got := scr.GetCell((m.viewer.X+1)*2, m.viewer.Y+m.hudHeight); got.Rune != '█' {
		t.Errorf("wall glyph = %q, want full block", got.Rune)
	}
}
