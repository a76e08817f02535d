package bench

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridkit/coord"
	"github.com/vovakirdan/gridkit/flowfield"
	"github.com/vovakirdan/gridkit/fov"
	"github.com/vovakirdan/gridkit/internal/mapgen"
	"github.com/vovakirdan/gridkit/pathfind"
	"github.com/vovakirdan/gridkit/spatial"
)

// DefaultCases builds the standard suite: A* over maze and room maps at
// each size, flow-field builds, FOV sweeps at growing radii, and
// quadtree churn. All maps derive from the seed, so a suite is
// reproducible end to end.
func DefaultCases(sizes []int, seed int64) []Case {
	var cases []Case

	for _, size := range sizes {
		// Maze sizes need odd dimensions for the lattice.
		mazeSize := size | 1

		maze := mapgen.Maze(mazeSize, mazeSize, seed)
		cases = append(cases, Case{
			Name:     fmt.Sprintf("astar/maze-%d", size),
			GridSize: mazeSize * mazeSize,
			Ops:      50,
			Run:      astarCase(maze, 50),
		})

		rooms := mapgen.Rooms(size, size, seed)
		cases = append(cases, Case{
			Name:     fmt.Sprintf("astar/rooms-%d", size),
			GridSize: size * size,
			Ops:      50,
			Run:      astarCase(rooms, 50),
		})

		cases = append(cases, Case{
			Name:     fmt.Sprintf("flowfield/rooms-%d", size),
			GridSize: size * size,
			Ops:      20,
			Run:      flowfieldCase(rooms, 20),
		})
	}

	for _, radius := range []int{4, 8, 16} {
		scatter := mapgen.Scatter(2*radius+1, 2*radius+1, 0.2, seed)
		cases = append(cases, Case{
			Name:     fmt.Sprintf("fov/radius-%d", radius),
			GridSize: (2*radius + 1) * (2*radius + 1),
			Ops:      100,
			Run:      fovCase(scatter, radius, 100),
		})
	}

	cases = append(cases, Case{
		Name:     "quadtree/churn",
		GridSize: 256 * 256,
		Ops:      5000,
		Run:      quadtreeCase(seed, 5000),
	})

	return cases
}

func astarCase(m *mapgen.Map, ops int) func() error {
	return func() error {
		for i := 0; i < ops; i++ {
			_, err := pathfind.Find(pathfind.Query[coord.Square4]{
				Start:    m.Start,
				Goals:    []coord.Square4{m.Goal},
				Passable: m.Passable,
			})
			if err != nil {
				return fmt.Errorf("bench: astar op %d: %w", i, err)
			}
		}
		return nil
	}
}

func flowfieldCase(m *mapgen.Map, ops int) func() error {
	return func() error {
		field, err := flowfield.Build(m.Walls, []coord.Square4{m.Goal}, m.Passable, nil)
		if err != nil {
			return fmt.Errorf("bench: flowfield build: %w", err)
		}
		for i := 1; i < ops; i++ {
			if err := field.Rebuild([]coord.Square4{m.Goal}, m.Passable, nil); err != nil {
				return fmt.Errorf("bench: flowfield rebuild %d: %w", i, err)
			}
		}
		return nil
	}
}

func fovCase(m *mapgen.Map, radius, ops int) func() error {
	opaque := func(c coord.Square8) bool {
		return !m.Passable(coord.Sq4(c.X, c.Y))
	}
	origin := coord.Sq8(m.Start.X, m.Start.Y)
	return func() error {
		for i := 0; i < ops; i++ {
			algo := fov.Shadowcast
			if i%2 == 1 {
				algo = fov.RayMarch
			}
			res := fov.Compute(origin, radius, opaque, algo)
			if res.Len() == 0 {
				return fmt.Errorf("bench: fov op %d: empty visible set", i)
			}
		}
		return nil
	}
}

func quadtreeCase(seed int64, ops int) func() error {
	return func() error {
		rng := rand.New(rand.NewSource(seed))
		qt := spatial.NewQuadtree(spatial.NewRect(0, 0, 256, 256), 8)

		live := make([]spatial.ID, 0, ops)
		next := spatial.ID(1)
		for i := 0; i < ops; i++ {
			switch {
			case len(live) == 0 || rng.Float64() < 0.5:
				pos := coord.Pixel{X: rng.Float64() * 256, Y: rng.Float64() * 256}
				if err := qt.Insert(next, pos); err != nil {
					return fmt.Errorf("bench: quadtree insert: %w", err)
				}
				live = append(live, next)
				next++
			case rng.Float64() < 0.6:
				id := live[rng.Intn(len(live))]
				pos := coord.Pixel{X: rng.Float64() * 256, Y: rng.Float64() * 256}
				if err := qt.Update(id, pos); err != nil {
					return fmt.Errorf("bench: quadtree update: %w", err)
				}
			default:
				i := rng.Intn(len(live))
				qt.Remove(live[i])
				live[i] = live[len(live)-1]
				live = live[:len(live)-1]
			}
			if i%16 == 0 {
				center := coord.Pixel{X: rng.Float64() * 256, Y: rng.Float64() * 256}
				qt.QueryCircle(center, 20)
			}
		}
		return nil
	}
}
