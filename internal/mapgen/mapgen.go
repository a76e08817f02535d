// Package mapgen builds deterministic test maps for the lab and the
// benchmark runner. Every generator is a pure function of its seed, so
// a seed in a bench report reproduces the exact map.
package mapgen

import (
	"math/rand"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/grid"
)

// Map is a generated wall grid plus a suggested start and goal placed
// far apart on open cells.
type Map struct {
	Walls *grid.Grid[coord.Square4, bool]
	Start coord.Square4
	Goal  coord.Square4
}

// Passable reports whether c is an open in-bounds cell.
func (m *Map) Passable(c coord.Square4) bool {
	wall, err := m.Walls.At(c)
	return err == nil && !wall
}

type room struct {
	x, y, w, h int
}

func (r room) center() (int, int) {
	return r.x + r.w/2, r.y + r.h/2
}

func (r room) overlaps(other room) bool {
	// One cell of padding so carved rooms keep a wall between them.
	return r.x-1 < other.x+other.w && other.x-1 < r.x+r.w &&
		r.y-1 < other.y+other.h && other.y-1 < r.y+r.h
}

// Rooms places non-overlapping rectangular rooms and joins consecutive
// room centers with L-shaped corridors. Start and goal are the centers
// of the first and last rooms placed.
func Rooms(w, h int, seed int64) *Map {
	rng := rand.New(rand.NewSource(seed))
	walls, _ := grid.New(coord.Sq4(0, 0), w, h, true)

	var rooms []room
	attempts := w * h / 20
	for i := 0; i < attempts; i++ {
		r := room{
			w: 3 + rng.Intn(5),
			h: 3 + rng.Intn(4),
		}
		if r.w >= w-2 || r.h >= h-2 {
			continue
		}
		r.x = 1 + rng.Intn(w-r.w-1)
		r.y = 1 + rng.Intn(h-r.h-1)

		clear := true
		for _, placed := range rooms {
			if r.overlaps(placed) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		rooms = append(rooms, r)
		for y := r.y; y < r.y+r.h; y++ {
			for x := r.x; x < r.x+r.w; x++ {
				walls.Set(coord.Sq4(x, y), false)
			}
		}
	}

	// Degenerate bounds leave no rooms; carve a single open cell so the
	// map stays usable.
	if len(rooms) == 0 {
		rooms = append(rooms, room{x: w / 2, y: h / 2, w: 1, h: 1})
		walls.Set(coord.Sq4(w/2, h/2), false)
	}

	for i := 1; i < len(rooms); i++ {
		x1, y1 := rooms[i-1].center()
		x2, y2 := rooms[i].center()
		if rng.Intn(2) == 0 {
			carveH(walls, x1, x2, y1)
			carveV(walls, y1, y2, x2)
		} else {
			carveV(walls, y1, y2, x1)
			carveH(walls, x1, x2, y2)
		}
	}

	sx, sy := rooms[0].center()
	gx, gy := rooms[len(rooms)-1].center()
	return &Map{
		Walls: walls,
		Start: coord.Sq4(sx, sy),
		Goal:  coord.Sq4(gx, gy),
	}
}

func carveH(walls *grid.Grid[coord.Square4, bool], x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		walls.Set(coord.Sq4(x, y), false)
	}
}

func carveV(walls *grid.Grid[coord.Square4, bool], y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		walls.Set(coord.Sq4(x, y), false)
	}
}

// Maze carves a perfect maze with a recursive backtracker over the odd
// lattice. Even rows and columns stay walls; the maze spans the largest
// odd region that fits. Start is the top-left maze cell, goal the carved
// cell farthest from it.
func Maze(w, h int, seed int64) *Map {
	rng := rand.New(rand.NewSource(seed))
	walls, _ := grid.New(coord.Sq4(0, 0), w, h, true)

	// Lattice cells sit at odd coordinates.
	start := coord.Sq4(1, 1)
	walls.Set(start, false)

	stack := []coord.Square4{start}
	dirs := [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		perm := rng.Perm(4)
		carved := false
		for _, i := range perm {
			next := cur.Shift(dirs[i][0], dirs[i][1])
			if next.X < 1 || next.X >= w-1 || next.Y < 1 || next.Y >= h-1 {
				continue
			}
			if wall, err := walls.At(next); err != nil || !wall {
				continue // out of range or already visited
			}
			// Knock down the wall between, then the cell itself.
			walls.Set(cur.Shift(dirs[i][0]/2, dirs[i][1]/2), false)
			walls.Set(next, false)
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	goal := start
	for c, wall := range walls.All() {
		if !wall && c.X%2 == 1 && c.Y%2 == 1 && start.Distance(c) > start.Distance(goal) {
			goal = c
		}
	}
	return &Map{Walls: walls, Start: start, Goal: goal}
}

// Scatter blocks each cell independently with the given probability.
// Start and goal sit in opposite corners, kept open together with their
// direct neighbors; connectivity is probable, not guaranteed.
func Scatter(w, h int, density float64, seed int64) *Map {
	rng := rand.New(rand.NewSource(seed))
	walls, _ := grid.NewFunc(coord.Sq4(0, 0), w, h, func(coord.Square4) bool {
		return rng.Float64() < density
	})

	start := coord.Sq4(1, 1)
	goal := coord.Sq4(w-2, h-2)
	for _, c := range []coord.Square4{start, goal} {
		walls.Set(c, false)
		for _, n := range c.Neighbors() {
			walls.Set(n, false)
		}
	}

	return &Map{Walls: walls, Start: start, Goal: goal}
}
