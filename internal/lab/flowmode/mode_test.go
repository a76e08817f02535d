package flowmode

import (
	"testing"

	"github.com/vovakirdan/gridkit/coord"
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

func TestAgentsReachGoal(t *testing.T) {
	m := newMode()

	// Spawn an agent at the cursor, then run ticks until it retires.
	m.Step(press(core.ActionCycle))
	if len(m.agents) != 1 {
		t.Fatalf("agents = %d, want 1", len(m.agents))
	}

	limit := m.w * m.h * m.moveEveryTicks
	for i := 0; i < limit && len(m.agents) > 0; i++ {
		m.Step(press())
	}
	if len(m.agents) != 0 {
		t.Fatalf("agent never arrived, stuck at %v", m.agents)
	}
	if m.arrived != 1 {
		t.Errorf("arrived = %d, want 1", m.arrived)
	}
}

func TestAgentsDescendCost(t *testing.T) {
	m := newMode()
	m.Step(press(core.ActionCycle))

	prev, ok := m.field.CostAt(m.agents[0])
	if !ok {
		t.Fatal("agent spawned on unreachable cell")
	}
	for len(m.agents) > 0 {
		before := m.agents[0]
		for i := 0; i < m.moveEveryTicks; i++ {
			m.Step(press())
		}
		if len(m.agents) == 0 {
			break
		}
		cur, ok := m.field.CostAt(m.agents[0])
		if !ok {
			t.Fatalf("agent moved onto unreachable cell %v", m.agents[0])
		}
		if cur >= prev {
			t.Fatalf("cost did not decrease: %v (%d) -> %v (%d)", before, prev, m.agents[0], cur)
		}
		prev = cur
	}
}

func TestPaintInvalidatesAndRebuilds(t *testing.T) {
	m := newMode()

	m.Step(press(core.ActionPaint))
	if !m.field.Valid() {
		t.Error("field should be rebuilt within the same tick")
	}
	wall, err := m.world.At(m.cursor)
	if err != nil || !wall {
		t.Error("paint should set a wall at the cursor")
	}
	if _, ok := m.field.CostAt(m.cursor); ok {
		t.Error("walled cell should be unreachable after rebuild")
	}
}

func TestToggleGoalKeepsAtLeastOne(t *testing.T) {
	m := newMode()
	goal := m.goals[0]

	// Move the cursor onto the only goal and try to remove it.
	m.cursor = goal
	m.Step(press(core.ActionMark))
	if len(m.goals) != 1 {
		t.Fatalf("last goal removed, goals = %v", m.goals)
	}

	// Add a second goal elsewhere, then removal works.
	m.cursor = coord.Sq4(1, 1)
	m.Step(press(core.ActionMark))
	if len(m.goals) != 2 {
		t.Fatalf("goals = %d, want 2", len(m.goals))
	}
	m.Step(press(core.ActionMark))
	if len(m.goals) != 1 || m.goals[0] != goal {
		t.Errorf("goals after removal = %v, want [%v]", m.goals, goal)
	}
}

func TestMultiGoalSendsAgentToNearest(t *testing.T) {
	m := newMode()

	far := m.goals[0]
	near := coord.Sq4(3, m.h/2)
	m.cursor = near
	m.Step(press(core.ActionMark))

	// Agent next to the near goal.
	m.cursor = coord.Sq4(1, m.h/2)
	m.Step(press(core.ActionCycle))

	cost, ok := m.field.CostAt(m.agents[0])
	if !ok {
		t.Fatal("agent cell unreachable")
	}
	if want := m.agents[0].Distance(near); cost != want {
		t.Errorf("field cost %d, want distance to near goal %d (far goal at %v)", cost, want, far)
	}
}
