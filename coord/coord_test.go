package coord

import "testing"

func TestSquare4Neighbors(t *testing.T) {
	got := Sq4(2, 3).Neighbors()
	want := []Square4{{3, 3}, {1, 3}, {2, 4}, {2, 2}}

	if len(got) != len(want) {
		t.Fatalf("Neighbors() returned %d coords, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestSquare8Neighbors(t *testing.T) {
	got := Sq8(0, 0).Neighbors()
	want := []Square8{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	}

	if len(got) != len(want) {
		t.Fatalf("Neighbors() returned %d coords, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestHexNeighbors(t *testing.T) {
	got := Hx(1, -2).Neighbors()
	want := []Hex{
		{2, -2}, {2, -3}, {1, -3}, {0, -2}, {0, -1}, {1, -1},
	}

	if len(got) != len(want) {
		t.Fatalf("Neighbors() returned %d coords, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestTriNeighborCounts(t *testing.T) {
	for _, c := range []Tri{Tr(0, 0), Tr(1, 0), Tr(-3, 2), Tr(4, -5)} {
		if n := len(c.Neighbors()); n != 12 {
			t.Errorf("%v has %d neighbors, expected 12", c, n)
		}
	}
}

func TestTriPointing(t *testing.T) {
	tests := []struct {
		c  Tri
		up bool
	}{
		{Tr(0, 0), true},
		{Tr(1, 0), false},
		{Tr(2, 4), true},
		{Tr(2, 3), false},
		{Tr(-1, 0), false},
		{Tr(-1, -1), true},
	}

	for _, tc := range tests {
		if got := tc.c.PointsUp(); got != tc.up {
			t.Errorf("%v.PointsUp() = %v, expected %v", tc.c, got, tc.up)
		}
	}
}

func TestDistanceValues(t *testing.T) {
	t.Run("square4 manhattan", func(t *testing.T) {
		if d := Sq4(0, 0).Distance(Sq4(3, 4)); d != 7 {
			t.Errorf("distance = %d, expected 7", d)
		}
	})
	t.Run("square8 chebyshev", func(t *testing.T) {
		if d := Sq8(0, 0).Distance(Sq8(3, 4)); d != 4 {
			t.Errorf("distance = %d, expected 4", d)
		}
	})
	t.Run("hex axial", func(t *testing.T) {
		tests := []struct {
			a, b Hex
			want int
		}{
			{Hx(0, 0), Hx(0, 0), 0},
			{Hx(0, 0), Hx(1, 0), 1},
			{Hx(0, 0), Hx(2, -1), 2},
			{Hx(0, 0), Hx(-2, 3), 3},
			{Hx(3, -1), Hx(-1, 2), 4},
		}
		for _, tc := range tests {
			if d := tc.a.Distance(tc.b); d != tc.want {
				t.Errorf("%v.Distance(%v) = %d, expected %d", tc.a, tc.b, d, tc.want)
			}
		}
	})
	t.Run("tri max component", func(t *testing.T) {
		if d := Tr(0, 0).Distance(Tr(2, 2)); d != 2 {
			t.Errorf("distance = %d, expected 2", d)
		}
		if d := Tr(1, 1).Distance(Tr(-2, 1)); d != 3 {
			t.Errorf("distance = %d, expected 3", d)
		}
	})
	t.Run("iso manhattan", func(t *testing.T) {
		if d := Is(0, 0).Distance(Is(3, 4)); d != 7 {
			t.Errorf("distance = %d, expected 7", d)
		}
	})
}

func TestDistanceSymmetryAndIdentity(t *testing.T) {
	t.Run("square4", func(t *testing.T) {
		pts := []Square4{{0, 0}, {3, -2}, {-5, 7}, {10, 10}}
		for _, a := range pts {
			if a.Distance(a) != 0 {
				t.Errorf("Distance(%v, %v) should be 0", a, a)
			}
			for _, b := range pts {
				if a.Distance(b) != b.Distance(a) {
					t.Errorf("Distance(%v, %v) != Distance(%v, %v)", a, b, b, a)
				}
			}
		}
	})
	t.Run("square8", func(t *testing.T) {
		pts := []Square8{{0, 0}, {3, -2}, {-5, 7}, {10, 10}}
		for _, a := range pts {
			if a.Distance(a) != 0 {
				t.Errorf("Distance(%v, %v) should be 0", a, a)
			}
			for _, b := range pts {
				if a.Distance(b) != b.Distance(a) {
					t.Errorf("Distance(%v, %v) != Distance(%v, %v)", a, b, b, a)
				}
			}
		}
	})
	t.Run("hex", func(t *testing.T) {
		pts := []Hex{{0, 0}, {3, -2}, {-5, 7}, {2, 2}}
		for _, a := range pts {
			if a.Distance(a) != 0 {
				t.Errorf("Distance(%v, %v) should be 0", a, a)
			}
			for _, b := range pts {
				if a.Distance(b) != b.Distance(a) {
					t.Errorf("Distance(%v, %v) != Distance(%v, %v)", a, b, b, a)
				}
			}
		}
	})
	t.Run("tri", func(t *testing.T) {
		pts := []Tri{{0, 0}, {3, -2}, {-5, 7}, {2, 2}}
		for _, a := range pts {
			if a.Distance(a) != 0 {
				t.Errorf("Distance(%v, %v) should be 0", a, a)
			}
			for _, b := range pts {
				if a.Distance(b) != b.Distance(a) {
					t.Errorf("Distance(%v, %v) != Distance(%v, %v)", a, b, b, a)
				}
			}
		}
	})
}

// Every topology must be mutual: if n is a neighbor of c, then c is a
// neighbor of n.
func TestNeighborReflexivity(t *testing.T) {
	t.Run("square4", func(t *testing.T) {
		c := Sq4(1, -3)
		for _, n := range c.Neighbors() {
			found := false
			for _, back := range n.Neighbors() {
				if back == c {
					found = true
				}
			}
			if !found {
				t.Errorf("%v is a neighbor of %v but not vice versa", n, c)
			}
		}
	})
	t.Run("square8", func(t *testing.T) {
		c := Sq8(2, 5)
		for _, n := range c.Neighbors() {
			found := false
			for _, back := range n.Neighbors() {
				if back == c {
					found = true
				}
			}
			if !found {
				t.Errorf("%v is a neighbor of %v but not vice versa", n, c)
			}
		}
	})
	t.Run("hex", func(t *testing.T) {
		c := Hx(-2, 4)
		for _, n := range c.Neighbors() {
			found := false
			for _, back := range n.Neighbors() {
				if back == c {
					found = true
				}
			}
			if !found {
				t.Errorf("%v is a neighbor of %v but not vice versa", n, c)
			}
		}
	})
	t.Run("tri both parities", func(t *testing.T) {
		for _, c := range []Tri{Tr(0, 0), Tr(1, 0)} {
			for _, n := range c.Neighbors() {
				found := false
				for _, back := range n.Neighbors() {
					if back == c {
						found = true
					}
				}
				if !found {
					t.Errorf("%v is a neighbor of %v but not vice versa", n, c)
				}
			}
		}
	})
}

// Triangular steps may cover two units of the metric; no topology may
// exceed that, and the square/hex/iso families must stay at one.
func TestNeighborStepSpan(t *testing.T) {
	maxSpan := func(dists []int) int {
		m := 0
		for _, d := range dists {
			if d > m {
				m = d
			}
		}
		return m
	}

	c4 := Sq4(0, 0)
	var d4 []int
	for _, n := range c4.Neighbors() {
		d4 = append(d4, c4.Distance(n))
	}
	if maxSpan(d4) != 1 {
		t.Errorf("square4 step span = %d, expected 1", maxSpan(d4))
	}

	h := Hx(0, 0)
	var dh []int
	for _, n := range h.Neighbors() {
		dh = append(dh, h.Distance(n))
	}
	if maxSpan(dh) != 1 {
		t.Errorf("hex step span = %d, expected 1", maxSpan(dh))
	}

	tr := Tr(0, 0)
	var dt []int
	for _, n := range tr.Neighbors() {
		dt = append(dt, tr.Distance(n))
	}
	if maxSpan(dt) != 2 {
		t.Errorf("tri step span = %d, expected 2", maxSpan(dt))
	}
}

func TestArithmeticClosure(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		a, b := Hx(2, -1), Hx(-3, 4)
		if got := a.Add(b); got != Hx(-1, 3) {
			t.Errorf("Add = %v, expected hex(-1,3)", got)
		}
		if got := a.Sub(b); got != Hx(5, -5) {
			t.Errorf("Sub = %v, expected hex(5,-5)", got)
		}
		if got := a.Scale(3); got != Hx(6, -3) {
			t.Errorf("Scale = %v, expected hex(6,-3)", got)
		}
	})
	t.Run("square4", func(t *testing.T) {
		a, b := Sq4(1, 2), Sq4(3, -4)
		if got := a.Add(b); got != Sq4(4, -2) {
			t.Errorf("Add = %v, expected sq4(4,-2)", got)
		}
		if got := a.Sub(b); got != Sq4(-2, 6) {
			t.Errorf("Sub = %v, expected sq4(-2,6)", got)
		}
		if got := a.Scale(-2); got != Sq4(-2, -4) {
			t.Errorf("Scale = %v, expected sq4(-2,-4)", got)
		}
	})
}

func TestShiftMatchesUnpack(t *testing.T) {
	h := Hx(3, -7)
	q, r := h.Unpack()
	if q != 3 || r != -7 {
		t.Fatalf("Unpack() = (%d, %d), expected (3, -7)", q, r)
	}
	if got := Hx(0, 0).Shift(q, r); got != h {
		t.Errorf("Shift(Unpack()) = %v, expected %v", got, h)
	}
}

func TestHexCubeComponent(t *testing.T) {
	tests := []struct {
		c Hex
		s int
	}{
		{Hx(0, 0), 0},
		{Hx(1, 0), -1},
		{Hx(-2, 3), -1},
		{Hx(5, -2), -3},
	}

	for _, tc := range tests {
		if got := tc.c.S(); got != tc.s {
			t.Errorf("%v.S() = %d, expected %d", tc.c, got, tc.s)
		}
	}
}
