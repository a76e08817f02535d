package mapgen

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/pathfind"
)

func sameMap(a, b *Map) bool {
	if a.Start != b.Start || a.Goal != b.Goal {
		return false
	}
	min, w, h := a.Walls.Bounds()
	bmin, bw, bh := b.Walls.Bounds()
	if min != bmin || w != bw || h != bh {
		return false
	}
	for c, wall := range a.Walls.All() {
		other, _ := b.Walls.At(c)
		if wall != other {
			return false
		}
	}
	return true
}

func TestDeterminism(t *testing.T) {
	gens := []struct {
		name string
		gen  func(seed int64) *Map
	}{
		{"rooms", func(seed int64) *Map { return Rooms(40, 20, seed) }},
		{"maze", func(seed int64) *Map { return Maze(31, 21, seed) }},
		{"scatter", func(seed int64) *Map { return Scatter(30, 30, 0.3, seed) }},
	}

	for _, tc := range gens {
		t.Run(tc.name, func(t *testing.T) {
			if !sameMap(tc.gen(42), tc.gen(42)) {
				t.Error("same seed should generate the same map")
			}
			if sameMap(tc.gen(42), tc.gen(43)) {
				t.Error("different seeds should generate different maps")
			}
		})
	}
}

func TestConnectivity(t *testing.T) {
	gens := []struct {
		name string
		gen  func(seed int64) *Map
	}{
		{"rooms", func(seed int64) *Map { return Rooms(40, 20, seed) }},
		{"maze", func(seed int64) *Map { return Maze(31, 21, seed) }},
	}

	for _, tc := range gens {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(0); seed < 5; seed++ {
				m := tc.gen(seed)
				if !m.Passable(m.Start) {
					t.Fatalf("seed %d: start %v is not open", seed, m.Start)
				}
				if !m.Passable(m.Goal) {
					t.Fatalf("seed %d: goal %v is not open", seed, m.Goal)
				}
				_, err := pathfind.Find(pathfind.Query[coord.Square4]{
					Start:    m.Start,
					Goals:    []coord.Square4{m.Goal},
					Passable: m.Passable,
				})
				if err != nil {
					t.Errorf("seed %d: no path from %v to %v: %v", seed, m.Start, m.Goal, err)
				}
			}
		})
	}
}

func TestMazeLattice(t *testing.T) {
	m := Maze(21, 15, 7)

	// The outer border stays solid.
	for x := 0; x < 21; x++ {
		if m.Passable(coord.Sq4(x, 0)) || m.Passable(coord.Sq4(x, 14)) {
			t.Fatalf("border open at x=%d", x)
		}
	}
	for y := 0; y < 15; y++ {
		if m.Passable(coord.Sq4(0, y)) || m.Passable(coord.Sq4(20, y)) {
			t.Fatalf("border open at y=%d", y)
		}
	}

	// Even-even lattice points are never carved.
	for c, wall := range m.Walls.All() {
		if c.X%2 == 0 && c.Y%2 == 0 && !wall {
			t.Fatalf("lattice post %v carved", c)
		}
	}
}

func TestScatterKeepsEndpointsOpen(t *testing.T) {
	m := Scatter(25, 25, 0.9, 3)
	if !m.Passable(m.Start) || !m.Passable(m.Goal) {
		t.Error("start and goal must stay open at any density")
	}
}

func TestScatterUnreachableIsReported(t *testing.T) {
	// At density 1.0 everything except the endpoint pockets is walled,
	// so the pathfinder must report no path rather than wander.
	m := Scatter(25, 25, 1.0, 3)
	_, err := pathfind.Find(pathfind.Query[coord.Square4]{
		Start:    m.Start,
		Goals:    []coord.Square4{m.Goal},
		Passable: m.Passable,
	})
	if !errors.Is(err, pathfind.ErrNoPath) {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
}
