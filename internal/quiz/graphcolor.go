package quiz

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/SmauRobert/SmartTest/internal/puzzles/graphcolor"
)

var graphTemplates = []Template{
	{ID: "graph_chromatic_name", Topic: TopicGraphColoring, Kind: KindTheory, Generate: generateGraphChromaticName},
	{ID: "graph_chromatic_number", Topic: TopicGraphColoring, Kind: KindTheory, Generate: generateGraphChromaticNumber},
	{ID: "graph_coloring_validation", Topic: TopicGraphColoring, Kind: KindValidation, Generate: generateGraphColoringValidation},
	{ID: "graph_coloring_solution", Topic: TopicGraphColoring, Kind: KindSolution, Generate: generateGraphColoringSolution},
	{ID: "graph_strategy", Topic: TopicGraphColoring, Kind: KindAnalysis, Generate: generateGraphStrategy},
	{ID: "graph_race", Topic: TopicGraphColoring, Kind: KindRace, Generate: generateGraphRace},
}

func generateGraphChromaticName(rng *rand.Rand) *Question {
	return stamp("graph_chromatic_name", TopicGraphColoring, KindTheory, Question{
		Prompt: "Consider a graph G. The 'minimum number of colors needed to color the vertices of G so that no two adjacent vertices share the same color' is known by what name?",
		Hint:   "Please enter the name (e.g., 'Color Count').",
		Answer: "Chromatic Number",
	})
}

func generateGraphChromaticNumber(rng *rand.Rand) *Question {
	v := 4 + rng.Intn(4) // 4-7 vertices

	var edges []graphcolor.Edge
	var structure string
	var chi int

	switch rng.Intn(4) {
	case 0: // complete graph
		for i := 0; i < v; i++ {
			for j := i + 1; j < v; j++ {
				edges = append(edges, graphcolor.Edge{U: i, V: j})
			}
		}
		structure = fmt.Sprintf("a K%d (complete graph)", v)
		chi = v
	case 1: // cycle
		for i := 0; i < v; i++ {
			edges = append(edges, graphcolor.Edge{U: i, V: (i + 1) % v})
		}
		structure = fmt.Sprintf("a C%d (%d-cycle)", v, v)
		chi = 2
		if v%2 == 1 {
			chi = 3
		}
	case 2: // bipartite
		left := 2 + rng.Intn(v/2)
		for i := 0; i < left; i++ {
			count := 1 + rng.Intn(min(v-left, 3))
			for _, j := range rng.Perm(v - left)[:count] {
				edges = append(edges, graphcolor.Edge{U: i, V: left + j})
			}
		}
		structure = "a bipartite graph"
		chi = 2
	default:
		g := graphcolor.Random(rng, v, v+rng.Intn(v))
		edges = g.Edges
		structure = "a random graph"
		// v is small enough for the exact solver
		chi = graphcolor.ChromaticNumber(g)
	}

	return stamp("graph_chromatic_number", TopicGraphColoring, KindTheory, Question{
		Prompt: fmt.Sprintf(
			"What is the chromatic number for the following graph: %s?",
			renderAdjacency(v, edges)),
		Hint: "Please enter a single integer.",
		Instance: &GraphInstance{
			V: v, Edges: edges, Structure: structure, Chi: chi,
		},
		Answer: strconv.Itoa(chi),
	})
}

func generateGraphColoringValidation(rng *rand.Rand) *Question {
	v := 4 + rng.Intn(3) // 4-6
	g := graphcolor.Random(rng, v, v+rng.Intn(v))
	edges := g.Edges

	var coloring []int
	if rng.Intn(2) == 0 {
		coloring = graphcolor.Greedy(g)
	} else {
		coloring = make([]int, v)
		for i := range coloring {
			coloring[i] = rng.Intn(3)
		}
		// force a conflict when the random assignment happens to be valid
		if g.ValidColoring(coloring) == nil && len(edges) > 0 {
			e := edges[rng.Intn(len(edges))]
			coloring[e.V] = coloring[e.U]
		}
	}

	return stamp("graph_coloring_validation", TopicGraphColoring, KindValidation, Question{
		Prompt: fmt.Sprintf(
			"For the graph %s, is the following coloring valid: %s? (%s)",
			renderAdjacency(v, edges), FormatIntList(coloring), colorLegend(coloring)),
		Hint: "Please answer 'Yes' or 'No'.",
		Instance: &GraphInstance{
			V: v, Edges: edges, Coloring: coloring,
		},
	})
}

func generateGraphColoringSolution(rng *rand.Rand) *Question {
	v := 4 + rng.Intn(4) // 4-7
	g := graphcolor.Random(rng, v, v+rng.Intn(v))
	edges := g.Edges
	chi := graphcolor.ChromaticNumber(g)
	budget := chi + rng.Intn(2) // always satisfiable

	var reference string
	if coloring, ok := graphcolor.ColorWithBudget(g, budget); ok {
		reference = FormatIntList(coloring)
	}

	return stamp("graph_coloring_solution", TopicGraphColoring, KindSolution, Question{
		Prompt: fmt.Sprintf(
			"Color the graph %s using at most %d colors so that no two adjacent vertices share a color.",
			renderAdjacency(v, edges), budget),
		Hint: fmt.Sprintf(
			"Provide a list in format: [c0,c1,...,c%d] where each number (0 to %d) is the color of that vertex.",
			v-1, budget-1),
		Instance: &GraphInstance{
			V: v, Edges: edges, Colors: budget, Chi: chi,
		},
		Reference: reference,
	})
}

func generateGraphStrategy(rng *rand.Rand) *Question {
	v := 6 + rng.Intn(5)

	return stamp("graph_strategy", TopicGraphColoring, KindAnalysis, Question{
		Prompt: fmt.Sprintf(
			"You must color a graph with %d vertices using as few colors as possible.\n1. Which algorithm or heuristic would you use?\n2. Why does vertex ordering matter for greedy coloring?",
			v),
		Hint:     "Structure your answer as:\nAlgorithm: ...\nExplanation: ...",
		Instance: &GraphInstance{V: v},
	})
}

// GraphRaceContenders names the coloring algorithms a race can compare.
var GraphRaceContenders = []string{"Simple Greedy", "Welsh-Powell"}

func generateGraphRace(rng *rand.Rand) *Question {
	v := 8 + rng.Intn(8) // 8-15
	maxEdges := v * (v - 1) / 2
	m := v + rng.Intn(min(maxEdges, 2*v)-v+1)
	edges := graphcolor.Random(rng, v, m).Edges

	return stamp("graph_race", TopicGraphColoring, KindRace, Question{
		Prompt: fmt.Sprintf(
			"For a graph with %d nodes and edges: [%s], which algorithm will find a valid coloring *first*: Simple Greedy or Welsh-Powell (Largest-Degree-First)?",
			v, renderEdgeList(edges, 20)),
		Hint: "Please enter 'Simple Greedy' or 'Welsh-Powell'.",
		Instance: &GraphInstance{
			V: v, Edges: edges, Contenders: GraphRaceContenders,
		},
	})
}

// renderAdjacency writes a graph as an adjacency listing, e.g.
// {0: [1, 2], 1: [0], 2: [0]}.
func renderAdjacency(v int, edges []graphcolor.Edge) string {
	adj := make([][]int, v)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	parts := make([]string, v)
	for i := range adj {
		sort.Ints(adj[i])
		ns := make([]string, len(adj[i]))
		for j, n := range adj[i] {
			ns[j] = strconv.Itoa(n)
		}
		parts[i] = fmt.Sprintf("%d: [%s]", i, strings.Join(ns, ", "))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// renderEdgeList writes edges as "u-v, u-v", truncated past limit.
func renderEdgeList(edges []graphcolor.Edge, limit int) string {
	sorted := make([]graphcolor.Edge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].U != sorted[j].U {
			return sorted[i].U < sorted[j].U
		}
		return sorted[i].V < sorted[j].V
	})
	shown := sorted
	if len(shown) > limit {
		shown = shown[:limit]
	}
	parts := make([]string, len(shown))
	for i, e := range shown {
		parts[i] = fmt.Sprintf("%d-%d", e.U, e.V)
	}
	s := strings.Join(parts, ", ")
	if extra := len(sorted) - limit; extra > 0 {
		s += fmt.Sprintf(", ... (%d more edges)", extra)
	}
	return s
}

var colorNames = []string{"Red", "Green", "Blue", "Yellow", "Orange", "Purple"}

func colorLegend(coloring []int) string {
	max := 0
	for _, c := range coloring {
		if c > max {
			max = c
		}
	}
	count := max + 1
	if count > len(colorNames) {
		count = len(colorNames)
	}
	parts := make([]string, count)
	for i := 0; i < count; i++ {
		parts[i] = fmt.Sprintf("%d=%s", i, colorNames[i])
	}
	return strings.Join(parts, ", ")
}
