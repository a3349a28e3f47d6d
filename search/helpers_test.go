package search_test

import (
	"math"
	"math/rand/v2"
	"sort"
)

// pt is a grid cell used as the state of testGrid.
type pt struct{ X, Y int }

// testGrid is a w×h 4-connected grid with unit costs, Manhattan heuristic and
// optional walls.
type testGrid struct {
	w, h  int
	walls map[pt]bool
}

func openGrid(w, h int) *testGrid { return &testGrid{w: w, h: h, walls: map[pt]bool{}} }

func (g *testGrid) Neighbors(p pt) []pt {
	var out []pt
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		q := pt{p.X + d[0], p.Y + d[1]}
		if q.X < 0 || q.Y < 0 || q.X >= g.w || q.Y >= g.h || g.walls[q] {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (g *testGrid) Cost(_, _ pt) float64 { return 1 }

func (g *testGrid) Heuristic(p, goal pt) float64 {
	return math.Abs(float64(p.X-goal.X)) + math.Abs(float64(p.Y-goal.Y))
}

// weighted is a directed weighted graph over ints with an optional per-node
// heuristic table; missing heuristic entries are 0.
type weighted struct {
	adj map[int][]int
	w   map[[2]int]float64
	h   map[int]float64
}

func newWeighted() *weighted {
	return &weighted{adj: map[int][]int{}, w: map[[2]int]float64{}, h: map[int]float64{}}
}

func (g *weighted) edge(u, v int, c float64) {
	g.adj[u] = append(g.adj[u], v)
	g.w[[2]int{u, v}] = c
}

func (g *weighted) undirected(u, v int, c float64) {
	g.edge(u, v, c)
	g.edge(v, u, c)
}

func (g *weighted) Neighbors(s int) []int      { return g.adj[s] }
func (g *weighted) Cost(u, v int) float64      { return g.w[[2]int{u, v}] }
func (g *weighted) Heuristic(s, _ int) float64 { return g.h[s] }

func (g *weighted) nodes() []int {
	seen := map[int]bool{}
	for u, vs := range g.adj {
		seen[u] = true
		for _, v := range vs {
			seen[v] = true
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// randomConnected builds an undirected graph on n nodes: a random spanning
// tree plus extra random edges, integer weights in [1, 9].
func randomConnected(rng *rand.Rand, n, extra int) *weighted {
	g := newWeighted()
	for v := 1; v < n; v++ {
		g.undirected(rng.IntN(v), v, float64(1+rng.IntN(9)))
	}
	for i := 0; i < extra; i++ {
		u, v := rng.IntN(n), rng.IntN(n)
		if u == v {
			continue
		}
		if _, dup := g.w[[2]int{u, v}]; dup {
			continue
		}
		g.undirected(u, v, float64(1+rng.IntN(9)))
	}
	return g
}

// floyd returns all-pairs shortest distances; unit forces every edge to 1.
func floyd(g *weighted, n int, unit bool) [][]float64 {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}
	for e, c := range g.w {
		if unit {
			c = 1
		}
		if c < d[e[0]][e[1]] {
			d[e[0]][e[1]] = c
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	return d
}

// progressRecorder wraps testGrid and records every DisplayProgress call.
type progressRecorder struct {
	*testGrid
	calls [][]pt
}

func (p *progressRecorder) DisplayProgress(_, _ pt, open []pt) {
	p.calls = append(p.calls, open)
}
