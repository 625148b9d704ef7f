package network

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// LayoutOptions controls the spring layout. The zero value gives the
// standard run: 50 iterations from seed 0.
type LayoutOptions struct {
	// Iterations is the number of simulation steps. Defaults to
	// DefaultIterations when zero or negative.
	Iterations int

	// Seed drives the initial random placement. The same seed over the
	// same graph reproduces the same coordinates exactly.
	Seed int64
}

// DefaultIterations is the standard number of spring simulation steps.
const DefaultIterations = 50

// Layout3D positions every node of the graph in 3-space with a
// Fruchterman-Reingold style spring simulation: all node pairs repel
// with force k²/d, edge endpoints attract with force d²/k, and per-step
// displacement is capped by a temperature that cools linearly to zero.
// The optimal spacing k is cbrt(1/n) for n nodes, matching an initial
// placement inside the unit cube.
func Layout3D(g *Graph, opts LayoutOptions) map[string]r3.Vec {
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	ids := g.NodeIDs()
	n := len(ids)
	positions := make(map[string]r3.Vec, n)
	if n == 0 {
		return positions
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	pos := make([]r3.Vec, n)
	for i := range pos {
		pos[i] = r3.Vec{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
	}
	if n == 1 {
		positions[ids[0]] = pos[0]
		return positions
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	edges := g.Edges()

	k := math.Cbrt(1 / float64(n))
	temp := 0.1
	cooling := temp / float64(iterations+1)

	disp := make([]r3.Vec, n)
	for step := 0; step < iterations; step++ {
		for i := range disp {
			disp[i] = r3.Vec{}
		}

		// Repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				delta := r3.Sub(pos[i], pos[j])
				d := math.Max(r3.Norm(delta), 1e-9)
				f := k * k / d
				push := r3.Scale(f/d, delta)
				disp[i] = r3.Add(disp[i], push)
				disp[j] = r3.Sub(disp[j], push)
			}
		}

		// Attraction along edges.
		for _, e := range edges {
			i, j := index[e[0]], index[e[1]]
			delta := r3.Sub(pos[i], pos[j])
			d := math.Max(r3.Norm(delta), 1e-9)
			f := d * d / k
			pull := r3.Scale(f/d, delta)
			disp[i] = r3.Sub(disp[i], pull)
			disp[j] = r3.Add(disp[j], pull)
		}

		// Move, capped by the current temperature.
		for i := 0; i < n; i++ {
			d := r3.Norm(disp[i])
			if d < 1e-9 {
				continue
			}
			step := math.Min(d, temp)
			pos[i] = r3.Add(pos[i], r3.Scale(step/d, disp[i]))
		}
		temp -= cooling
	}

	for i, id := range ids {
		positions[id] = pos[i]
	}
	return positions
}
