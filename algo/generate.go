package algo

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/hexlattice/graphbridge/engine"
	"github.com/hexlattice/graphbridge/errors"
)

// Generators populate an existing graph in place. They respect the graph's
// traits: a generator that would need a rejected edge (self-loop, parallel
// edge) simply never proposes one. Randomized generators are deterministic
// for a fixed seed.

// GenerateEmpty adds n isolated vertices.
func GenerateEmpty(g *engine.Graph, n int64) ([]int64, error) {
	if n < 0 {
		return nil, errors.IllegalArgument("generate_empty", "negative vertex count %d", n)
	}
	vertices := make([]int64, n)
	for i := int64(0); i < n; i++ {
		vertices[i] = g.AddVertex()
	}
	logGenerator("empty", g, n)
	return vertices, nil
}

// GenerateComplete adds n vertices and every possible edge between distinct
// pairs. On directed graphs both orientations are added.
func GenerateComplete(g *engine.Graph, n int64) error {
	vertices, err := GenerateEmpty(g, n)
	if err != nil {
		return err
	}
	for i, u := range vertices {
		for _, v := range vertices[i+1:] {
			if _, err := g.AddEdge(u, v); err != nil {
				return err
			}
			if g.Directed() {
				if _, err := g.AddEdge(v, u); err != nil {
					return err
				}
			}
		}
	}
	logGenerator("complete", g, n)
	return nil
}

// GenerateCompleteBipartite adds two sides of n1 and n2 vertices and every
// edge across the sides.
func GenerateCompleteBipartite(g *engine.Graph, n1, n2 int64) error {
	if n1 < 0 || n2 < 0 {
		return errors.IllegalArgument("generate_bipartite", "negative side size")
	}
	left, _ := GenerateEmpty(g, n1)
	right, _ := GenerateEmpty(g, n2)
	for _, u := range left {
		for _, v := range right {
			if _, err := g.AddEdge(u, v); err != nil {
				return err
			}
		}
	}
	logGenerator("complete_bipartite", g, n1+n2)
	return nil
}

// GenerateRing adds n vertices connected in a cycle.
func GenerateRing(g *engine.Graph, n int64) error {
	if n < 0 {
		return errors.IllegalArgument("generate_ring", "negative vertex count %d", n)
	}
	vertices, _ := GenerateEmpty(g, n)
	if n < 2 {
		return nil
	}
	if n == 2 && !g.AllowsMultipleEdges() && !g.Directed() {
		// A two-vertex ring needs a parallel edge; emit a single edge.
		_, err := g.AddEdge(vertices[0], vertices[1])
		return err
	}
	for i := range vertices {
		u := vertices[i]
		v := vertices[(i+1)%len(vertices)]
		if _, err := g.AddEdge(u, v); err != nil {
			return err
		}
	}
	logGenerator("ring", g, n)
	return nil
}

// GenerateBarabasiAlbert grows a graph by preferential attachment: an
// initial complete core of m0 vertices, then n-m0 vertices each attaching
// m edges to existing vertices with probability proportional to degree.
func GenerateBarabasiAlbert(g *engine.Graph, m0, m, n int64, seed int64) error {
	const op = "generate_barabasi_albert"
	if m0 < 1 || m < 1 || m > m0 || n < m0 {
		return errors.IllegalArgument(op, "need 1 <= m <= m0 <= n, got m0=%d m=%d n=%d", m0, m, n)
	}
	rng := rand.New(rand.NewSource(seed))

	core, _ := GenerateEmpty(g, m0)
	for i, u := range core {
		for _, v := range core[i+1:] {
			if _, err := g.AddEdge(u, v); err != nil {
				return err
			}
		}
	}

	// Repeated entries weight the draw by degree.
	var targets []int64
	for i, u := range core {
		for range core[i+1:] {
			targets = append(targets, u)
		}
		for _, v := range core[i+1:] {
			targets = append(targets, v)
		}
	}
	existing := append([]int64(nil), core...)

	for len(existing) < int(n) {
		u := g.AddVertex()
		chosen := map[int64]bool{}
		for int64(len(chosen)) < m {
			var v int64
			if len(targets) == 0 {
				v = existing[rng.Intn(len(existing))]
			} else {
				v = targets[rng.Intn(len(targets))]
			}
			if v == u || chosen[v] {
				continue
			}
			chosen[v] = true
		}
		for v := range chosen {
			if _, err := g.AddEdge(u, v); err != nil {
				return err
			}
			targets = append(targets, u, v)
		}
		existing = append(existing, u)
	}
	logGenerator("barabasi_albert", g, n)
	return nil
}

// GenerateWattsStrogatz builds the small-world model: a ring lattice where
// each vertex connects to its k nearest neighbours, then rewires each edge
// with probability p.
func GenerateWattsStrogatz(g *engine.Graph, n, k int64, p float64, seed int64) error {
	const op = "generate_watts_strogatz"
	if k < 2 || k%2 != 0 {
		return errors.IllegalArgument(op, "k must be positive and even, got %d", k)
	}
	if n <= k {
		return errors.IllegalArgument(op, "need n > k, got n=%d k=%d", n, k)
	}
	if p < 0 || p > 1 {
		return errors.IllegalArgument(op, "rewire probability %v outside [0,1]", p)
	}
	rng := rand.New(rand.NewSource(seed))

	vertices, _ := GenerateEmpty(g, n)
	for i := int64(0); i < n; i++ {
		for j := int64(1); j <= k/2; j++ {
			u := vertices[i]
			v := vertices[(i+j)%n]
			target := v
			if rng.Float64() < p {
				// Rewire to a uniform random vertex, avoiding loops and
				// duplicate edges.
				for tries := 0; tries < 64; tries++ {
					cand := vertices[rng.Intn(len(vertices))]
					if cand != u && !g.ContainsEdgeBetween(u, cand) {
						target = cand
						break
					}
				}
			}
			if g.ContainsEdgeBetween(u, target) {
				continue
			}
			if _, err := g.AddEdge(u, target); err != nil {
				return err
			}
		}
	}
	logGenerator("watts_strogatz", g, n)
	return nil
}

// GenerateKleinberg builds Kleinberg's small-world model on an n-by-n
// lattice: local edges to lattice neighbours plus q long-range contacts per
// vertex drawn with probability proportional to distance^-r.
func GenerateKleinberg(g *engine.Graph, n, q int64, r float64, seed int64) error {
	const op = "generate_kleinberg"
	if n < 1 {
		return errors.IllegalArgument(op, "lattice side %d must be positive", n)
	}
	if q < 0 {
		return errors.IllegalArgument(op, "negative contact count %d", q)
	}
	if r < 0 {
		return errors.IllegalArgument(op, "negative exponent %v", r)
	}
	rng := rand.New(rand.NewSource(seed))

	vertices, _ := GenerateEmpty(g, n*n)
	at := func(row, col int64) int64 { return vertices[row*n+col] }

	// Lattice edges.
	for row := int64(0); row < n; row++ {
		for col := int64(0); col < n; col++ {
			if col+1 < n {
				if _, err := g.AddEdge(at(row, col), at(row, col+1)); err != nil {
					return err
				}
			}
			if row+1 < n {
				if _, err := g.AddEdge(at(row, col), at(row+1, col)); err != nil {
					return err
				}
			}
		}
	}

	// Long-range contacts.
	manhattan := func(r1, c1, r2, c2 int64) float64 {
		return math.Abs(float64(r1-r2)) + math.Abs(float64(c1-c2))
	}
	for r1 := int64(0); r1 < n; r1++ {
		for c1 := int64(0); c1 < n; c1++ {
			u := at(r1, c1)
			for contact := int64(0); contact < q; contact++ {
				totalW := 0.0
				for r2 := int64(0); r2 < n; r2++ {
					for c2 := int64(0); c2 < n; c2++ {
						d := manhattan(r1, c1, r2, c2)
						if d > 0 {
							totalW += math.Pow(d, -r)
						}
					}
				}
				if totalW == 0 {
					break
				}
				draw := rng.Float64() * totalW
				acc := 0.0
			pick:
				for r2 := int64(0); r2 < n; r2++ {
					for c2 := int64(0); c2 < n; c2++ {
						d := manhattan(r1, c1, r2, c2)
						if d == 0 {
							continue
						}
						acc += math.Pow(d, -r)
						if acc >= draw {
							v := at(r2, c2)
							if !g.ContainsEdgeBetween(u, v) {
								if _, err := g.AddEdge(u, v); err != nil {
									return err
								}
							}
							break pick
						}
					}
				}
			}
		}
	}
	logGenerator("kleinberg", g, n*n)
	return nil
}

// GenerateGnm adds n vertices and m uniformly random edges.
func GenerateGnm(g *engine.Graph, n, m int64, seed int64) error {
	const op = "generate_gnm"
	if n < 0 || m < 0 {
		return errors.IllegalArgument(op, "negative size, n=%d m=%d", n, m)
	}
	if n == 0 && m > 0 {
		return errors.IllegalArgument(op, "cannot place %d edges on an empty graph", m)
	}
	if !g.AllowsMultipleEdges() {
		max := maxSimpleEdges(g, n)
		if m > max {
			return errors.IllegalArgument(op, "%d edges exceed the maximum %d for these traits", m, max)
		}
	}
	rng := rand.New(rand.NewSource(seed))

	vertices, _ := GenerateEmpty(g, n)
	placed := int64(0)
	for placed < m {
		u := vertices[rng.Intn(len(vertices))]
		v := vertices[rng.Intn(len(vertices))]
		if u == v && !g.AllowsSelfLoops() {
			continue
		}
		if !g.AllowsMultipleEdges() && g.ContainsEdgeBetween(u, v) {
			continue
		}
		if _, err := g.AddEdge(u, v); err != nil {
			return err
		}
		placed++
	}
	logGenerator("gnm", g, n)
	return nil
}

// GenerateGnp adds n vertices and includes each possible edge independently
// with probability p.
func GenerateGnp(g *engine.Graph, n int64, p float64, seed int64) error {
	const op = "generate_gnp"
	if n < 0 {
		return errors.IllegalArgument(op, "negative vertex count %d", n)
	}
	if p < 0 || p > 1 {
		return errors.IllegalArgument(op, "edge probability %v outside [0,1]", p)
	}
	rng := rand.New(rand.NewSource(seed))

	vertices, _ := GenerateEmpty(g, n)
	for i, u := range vertices {
		for _, v := range vertices[i+1:] {
			if rng.Float64() < p {
				if _, err := g.AddEdge(u, v); err != nil {
					return err
				}
			}
			if g.Directed() && rng.Float64() < p {
				if _, err := g.AddEdge(v, u); err != nil {
					return err
				}
			}
		}
		if g.AllowsSelfLoops() && rng.Float64() < p {
			if _, err := g.AddEdge(u, u); err != nil {
				return err
			}
		}
	}
	logGenerator("gnp", g, n)
	return nil
}

func maxSimpleEdges(g *engine.Graph, n int64) int64 {
	max := n * (n - 1) / 2
	if g.Directed() {
		max = n * (n - 1)
	}
	if g.AllowsSelfLoops() {
		max += n
	}
	return max
}

func logGenerator(name string, g *engine.Graph, n int64) {
	engine.Logger().Debug("generator populated graph",
		zap.String("generator", name),
		zap.Int64("vertices", n),
		zap.Int64("edges", g.EdgeCount()),
	)
}
