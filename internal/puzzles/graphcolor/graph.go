// Package graphcolor implements undirected graph coloring: validity
// checking, greedy and Welsh-Powell heuristics, and a brute-force chromatic
// number solver for the small graphs the quiz generates.
package graphcolor

import (
	"fmt"
	"math/rand"
	"sort"
)

// Edge is an undirected edge between two distinct vertices.
type Edge struct {
	U int
	V int
}

// Graph is an undirected graph over vertices 0..V-1.
type Graph struct {
	V     int
	Edges []Edge
	adj   [][]int
}

// New builds a graph from a vertex count and edge list. Duplicate edges and
// self-loops are the caller's responsibility to avoid; generators here never
// produce them.
func New(v int, edges []Edge) *Graph {
	g := &Graph{V: v, Edges: edges, adj: make([][]int, v)}
	for _, e := range edges {
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}
	return g
}

// Neighbors returns the adjacency list of u.
func (g *Graph) Neighbors(u int) []int { return g.adj[u] }

// Degree returns the number of edges incident to u.
func (g *Graph) Degree(u int) int { return len(g.adj[u]) }

// UncoloredVertexError reports a vertex with no color assigned.
type UncoloredVertexError struct {
	Vertex int
}

func (e *UncoloredVertexError) Error() string {
	return fmt.Sprintf("vertex %d has not been colored", e.Vertex)
}

// AdjacentSameColorError reports two adjacent vertices sharing a color.
type AdjacentSameColorError struct {
	U, V  int
	Color int
}

func (e *AdjacentSameColorError) Error() string {
	return fmt.Sprintf("vertices %d and %d are adjacent but both have color %d", e.U, e.V, e.Color)
}

// ValidColoring checks that colors assigns a non-negative color to every
// vertex and that no edge's endpoints share a color. The first conflict in
// edge-list order is reported; callers should rely only on the fact that a
// conflict is reported, not on which one.
func (g *Graph) ValidColoring(colors []int) error {
	if len(colors) != g.V {
		missing := len(colors)
		if missing > g.V {
			missing = g.V
		}
		return &UncoloredVertexError{Vertex: missing}
	}
	for v, c := range colors {
		if c < 0 {
			return &UncoloredVertexError{Vertex: v}
		}
	}
	for _, e := range g.Edges {
		if colors[e.U] == colors[e.V] {
			return &AdjacentSameColorError{U: e.U, V: e.V, Color: colors[e.U]}
		}
	}
	return nil
}

// Greedy colors vertices in index order, assigning each the smallest color
// not used by an already-colored neighbor. Always valid, not optimal.
func Greedy(g *Graph) []int {
	colors := make([]int, g.V)
	for i := range colors {
		colors[i] = -1
	}
	for u := 0; u < g.V; u++ {
		used := make(map[int]bool)
		for _, v := range g.adj[u] {
			if colors[v] >= 0 {
				used[colors[v]] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colors[u] = c
	}
	return colors
}

// WelshPowell colors vertices in descending degree order. Each color pass
// claims every still-uncolored vertex not adjacent to a vertex already given
// that color. Equal degrees break ties by vertex index (stable sort).
func WelshPowell(g *Graph) []int {
	order := make([]int, g.V)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Degree(order[i]) > g.Degree(order[j])
	})

	colors := make([]int, g.V)
	for i := range colors {
		colors[i] = -1
	}

	color := 0
	remaining := g.V
	for remaining > 0 {
		for _, u := range order {
			if colors[u] >= 0 {
				continue
			}
			conflict := false
			for _, v := range g.adj[u] {
				if colors[v] == color {
					conflict = true
					break
				}
			}
			if !conflict {
				colors[u] = color
				remaining--
			}
		}
		color++
	}
	return colors
}

// ColorWithBudget tries to color the graph with at most m colors using
// backtracking. Returns (coloring, true) on success.
func ColorWithBudget(g *Graph, m int) ([]int, bool) {
	colors := make([]int, g.V)
	for i := range colors {
		colors[i] = -1
	}
	var rec func(u int) bool
	rec = func(u int) bool {
		if u == g.V {
			return true
		}
		for c := 0; c < m; c++ {
			ok := true
			for _, v := range g.adj[u] {
				if colors[v] == c {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			colors[u] = c
			if rec(u + 1) {
				return true
			}
			colors[u] = -1
		}
		return false
	}
	if !rec(0) {
		return nil, false
	}
	return colors, true
}

// ChromaticNumber finds the exact chromatic number by trying m = 1, 2, ...
// until a full coloring succeeds. Exponential; only for small graphs.
func ChromaticNumber(g *Graph) int {
	if g.V == 0 {
		return 0
	}
	for m := 1; m <= g.V; m++ {
		if _, ok := ColorWithBudget(g, m); ok {
			return m
		}
	}
	return g.V
}

// Random generates a graph with v vertices and up to m distinct random
// edges. m is clamped to the maximum possible edge count.
func Random(rng *rand.Rand, v, m int) *Graph {
	maxEdges := v * (v - 1) / 2
	if m > maxEdges {
		m = maxEdges
	}
	seen := make(map[Edge]bool)
	var edges []Edge
	for len(edges) < m {
		u := rng.Intn(v)
		w := rng.Intn(v)
		if u == w {
			continue
		}
		if u > w {
			u, w = w, u
		}
		e := Edge{U: u, V: w}
		if seen[e] {
			continue
		}
		seen[e] = true
		edges = append(edges, e)
	}
	return New(v, edges)
}
