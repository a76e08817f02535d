package fov

import (
	"testing"

	"github.com/vovakirdan/gridkit/coord"
)

func open[C comparable](C) bool { return false }

func TestHexDiskNoBlockers(t *testing.T) {
	// Closed form: a hex disk of radius r holds 1 + 3r(r+1) cells; 37 at
	// radius 3.
	for _, algo := range []Algorithm{Shadowcast, RayMarch} {
		t.Run(algo.String(), func(t *testing.T) {
			r := Compute(coord.Hx(0, 0), 3, open[coord.Hex], algo)
			if r.Len() != 37 {
				t.Errorf("visible set size = %d, want 37", r.Len())
			}
		})
	}
}

func TestSquareDisksNoBlockers(t *testing.T) {
	tests := []struct {
		name string
		run  func() int
		want int
	}{
		{"square4 radius 3", func() int {
			return Compute(coord.Sq4(0, 0), 3, open[coord.Square4], Shadowcast).Len()
		}, 25}, // Manhattan disk: 1+4+8+12
		{"square8 radius 2", func() int {
			return Compute(coord.Sq8(0, 0), 2, open[coord.Square8], Shadowcast).Len()
		}, 25}, // Chebyshev disk: 5x5
		{"tri radius 2", func() int {
			return Compute(coord.Tr(0, 0), 2, open[coord.Tri], Shadowcast).Len()
		}, 25}, // max-metric disk: 5x5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run(); got != tt.want {
				t.Errorf("visible set size = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNilOpaqueMeansOpen(t *testing.T) {
	for _, algo := range []Algorithm{Shadowcast, RayMarch} {
		t.Run(algo.String(), func(t *testing.T) {
			got := Compute(coord.Sq4(0, 0), 3, nil, algo)
			if got.Len() != 25 { // full Manhattan disk, nothing blocks
				t.Errorf("visible set size = %d, want 25", got.Len())
			}
		})
	}

	if !LineOfSight(coord.Sq4(0, 0), coord.Sq4(4, 0), nil) {
		t.Error("nil predicate should never block sight")
	}

	m := Illuminate([]Light[coord.Square4]{
		{Pos: coord.Sq4(0, 0), Radius: 3, Intensity: 1},
	}, nil)
	if got := m.LevelAt(coord.Sq4(1, 0)); got <= 0 {
		t.Errorf("level next to the source = %v, want > 0", got)
	}
}

func TestOriginAlwaysVisible(t *testing.T) {
	everything := func(coord.Square8) bool { return true }

	r := Compute(coord.Sq8(5, 5), 3, everything, Shadowcast)
	if !r.Visible(coord.Sq8(5, 5)) {
		t.Error("origin not visible with an all-opaque predicate")
	}
	if d, ok := r.DistanceTo(coord.Sq8(5, 5)); !ok || d != 0 {
		t.Errorf("DistanceTo(origin) = %d, %v, want 0, true", d, ok)
	}

	zero := Compute(coord.Sq8(5, 5), 0, open[coord.Square8], Shadowcast)
	if zero.Len() != 1 {
		t.Errorf("radius-0 visible set size = %d, want 1", zero.Len())
	}
}

func TestPillarCastsShadow(t *testing.T) {
	pillar := func(c coord.Square8) bool { return c == coord.Sq8(2, 0) }

	r := Compute(coord.Sq8(0, 0), 4, pillar, Shadowcast)

	if !r.Visible(coord.Sq8(2, 0)) {
		t.Error("the pillar itself should be visible")
	}
	for _, hidden := range []coord.Square8{coord.Sq8(3, 0), coord.Sq8(4, 0)} {
		if r.Visible(hidden) {
			t.Errorf("%v should be in the pillar's shadow", hidden)
		}
	}
	for _, lit := range []coord.Square8{coord.Sq8(3, 1), coord.Sq8(1, 0), coord.Sq8(3, -1)} {
		if !r.Visible(lit) {
			t.Errorf("%v should be visible beside the shadow", lit)
		}
	}
}

func TestPillarRayMarch(t *testing.T) {
	pillar := func(c coord.Square8) bool { return c == coord.Sq8(2, 0) }

	r := Compute(coord.Sq8(0, 0), 4, pillar, RayMarch)
	if r.Visible(coord.Sq8(3, 0)) || r.Visible(coord.Sq8(4, 0)) {
		t.Error("cells behind the pillar should be hidden under ray marching")
	}
	if !r.Visible(coord.Sq8(2, 0)) {
		t.Error("the pillar itself should be visible")
	}
}

func TestTraceLineStraight(t *testing.T) {
	line := TraceLine(coord.Sq4(0, 0), coord.Sq4(3, 0))
	want := []coord.Square4{coord.Sq4(0, 0), coord.Sq4(1, 0), coord.Sq4(2, 0), coord.Sq4(3, 0)}
	if len(line) != len(want) {
		t.Fatalf("TraceLine = %v, want %v", line, want)
	}
	for i := range want {
		if line[i] != want[i] {
			t.Fatalf("TraceLine = %v, want %v", line, want)
		}
	}
}

func TestTraceLineEndpoints(t *testing.T) {
	line := TraceLine(coord.Hx(0, 0), coord.Hx(0, 0))
	if len(line) != 1 {
		t.Errorf("TraceLine to self has %d cells, want 1", len(line))
	}

	line = TraceLine(coord.Hx(-2, 0), coord.Hx(2, 0))
	if line[0] != coord.Hx(-2, 0) || line[len(line)-1] != coord.Hx(2, 0) {
		t.Errorf("TraceLine endpoints = %v .. %v", line[0], line[len(line)-1])
	}
	if len(line) != 5 {
		t.Errorf("axial hex line has %d cells, want 5", len(line))
	}
}

func TestLineOfSight(t *testing.T) {
	wallAt := func(w coord.Square4) func(coord.Square4) bool {
		return func(c coord.Square4) bool { return c == w }
	}

	if LineOfSight(coord.Sq4(0, 0), coord.Sq4(4, 0), wallAt(coord.Sq4(2, 0))) {
		t.Error("sight through a wall on the line should be blocked")
	}
	if !LineOfSight(coord.Sq4(0, 0), coord.Sq4(4, 0), wallAt(coord.Sq4(2, 3))) {
		t.Error("a wall off the line should not block")
	}
	// Endpoints never block.
	if !LineOfSight(coord.Sq4(0, 0), coord.Sq4(4, 0), wallAt(coord.Sq4(4, 0))) {
		t.Error("an opaque target should still be visible")
	}
}

func TestIlluminateFalloff(t *testing.T) {
	lights := []Light[coord.Square8]{
		{Pos: coord.Sq8(0, 0), Radius: 4, Intensity: 1},
	}

	m := Illuminate(lights, open[coord.Square8])

	if got := m.LevelAt(coord.Sq8(0, 0)); got != 1 {
		t.Errorf("level at source = %v, want 1", got)
	}
	if got := m.LevelAt(coord.Sq8(2, 0)); got != 0.5 {
		t.Errorf("level at distance 2 = %v, want 0.5", got)
	}
	if got := m.LevelAt(coord.Sq8(9, 9)); got != 0 {
		t.Errorf("level outside radius = %v, want 0", got)
	}
}

func TestIlluminateAdditiveClamp(t *testing.T) {
	lights := []Light[coord.Square8]{
		{Pos: coord.Sq8(-2, 0), Radius: 4, Intensity: 0.8},
		{Pos: coord.Sq8(2, 0), Radius: 4, Intensity: 0.8},
	}

	m := Illuminate(lights, open[coord.Square8])

	// Midpoint gets 0.4 from each side; the sum stays below the clamp.
	if got := m.LevelAt(coord.Sq8(0, 0)); got != 0.8 {
		t.Errorf("level at midpoint = %v, want 0.8", got)
	}
	// Each source position gets its own 0.8 plus the far light's 0.0
	// spill... at distance 4 falloff is zero, so exactly 0.8.
	if got := m.LevelAt(coord.Sq8(2, 0)); got != 0.8 {
		t.Errorf("level at a source = %v, want 0.8", got)
	}

	bright := []Light[coord.Square8]{
		{Pos: coord.Sq8(0, 0), Radius: 4, Intensity: 0.9},
		{Pos: coord.Sq8(1, 0), Radius: 4, Intensity: 0.9},
	}
	m = Illuminate(bright, open[coord.Square8])
	if got := m.LevelAt(coord.Sq8(0, 0)); got != 1 {
		t.Errorf("combined level = %v, want clamp to 1", got)
	}
}

func TestPenetratingLightIgnoresWalls(t *testing.T) {
	wall := func(c coord.Square8) bool { return c.X == 1 }

	solid := Illuminate([]Light[coord.Square8]{
		{Pos: coord.Sq8(0, 0), Radius: 4, Intensity: 1},
	}, wall)
	if solid.LevelAt(coord.Sq8(3, 0)) != 0 {
		t.Error("a normal light should not reach behind the wall")
	}

	xray := Illuminate([]Light[coord.Square8]{
		{Pos: coord.Sq8(0, 0), Radius: 4, Intensity: 1, PenetratesWalls: true},
	}, wall)
	if xray.LevelAt(coord.Sq8(3, 0)) == 0 {
		t.Error("a penetrating light should reach behind the wall")
	}
}

func TestLightColorMixing(t *testing.T) {
	red := Color{R: 1}
	blue := Color{B: 1}
	lights := []Light[coord.Square8]{
		{Pos: coord.Sq8(-2, 0), Radius: 8, Intensity: 0.5, Color: red},
		{Pos: coord.Sq8(2, 0), Radius: 8, Intensity: 0.5, Color: blue},
	}

	m := Illuminate(lights, open[coord.Square8])

	col, ok := m.ColorAt(coord.Sq8(0, 0))
	if !ok {
		t.Fatal("midpoint has no color")
	}
	// Equal contributions: an even red/blue mix with no green.
	if col.R != col.B || col.G != 0 {
		t.Errorf("mixed color = %+v, want equal R and B, zero G", col)
	}
}
