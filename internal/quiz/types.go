// Package quiz defines quiz questions and the static registry of question
// templates that generate them. Templates bind an instance generator, a
// prompt, and an answer-format hint; grading lives in internal/eval.
package quiz

import (
	"fmt"
	"strings"

	"github.com/SmauRobert/SmartTest/internal/puzzles/graphcolor"
	"github.com/SmauRobert/SmartTest/internal/puzzles/knight"
	"github.com/SmauRobert/SmartTest/internal/puzzles/minimax"
)

// Topic identifies a problem family.
type Topic string

const (
	TopicNQueens       Topic = "n_queens"
	TopicHanoi         Topic = "tower_of_hanoi"
	TopicGraphColoring Topic = "graph_coloring"
	TopicKnightsTour   Topic = "knights_tour"
	TopicMinimax       Topic = "minimax"
)

// AllTopics returns every topic in display order.
func AllTopics() []Topic {
	return []Topic{TopicNQueens, TopicHanoi, TopicGraphColoring, TopicKnightsTour, TopicMinimax}
}

// DisplayName returns the human-readable topic name.
func (t Topic) DisplayName() string {
	switch t {
	case TopicNQueens:
		return "N-Queens Problem"
	case TopicHanoi:
		return "Tower of Hanoi"
	case TopicGraphColoring:
		return "Graph Coloring"
	case TopicKnightsTour:
		return "Knight's Tour"
	case TopicMinimax:
		return "Minimax & Alpha-Beta"
	default:
		return string(t)
	}
}

// Kind classifies what a question asks for.
type Kind string

const (
	// KindSolution asks for a full solution (or computed value) for an instance.
	KindSolution Kind = "solution"
	// KindValidation asks whether a given move or assignment is legal.
	KindValidation Kind = "validation"
	// KindTheory asks for a fact with a single canonical answer.
	KindTheory Kind = "theory"
	// KindAnalysis asks for free-text strategy or complexity discussion.
	KindAnalysis Kind = "analysis"
	// KindRace asks which of several algorithms finishes first.
	KindRace Kind = "race"
)

// Instance is the closed union of per-topic problem parameters. Evaluators
// switch on the concrete type.
type Instance interface {
	instance()
}

// QueensInstance parameterizes N-Queens questions.
type QueensInstance struct {
	N int
}

// HanoiInstance parameterizes Tower of Hanoi questions. State, From and To
// are set only for move-validation questions; Contenders only for races.
type HanoiInstance struct {
	Disks  int
	Pegs   int
	Source int
	Target int

	State    [][]int // pegs bottom-to-top
	From, To int

	Contenders []string
}

// GraphInstance parameterizes graph coloring questions. Chi is the known
// chromatic number; Coloring is set only for validation questions.
type GraphInstance struct {
	V         int
	Edges     []graphcolor.Edge
	Colors    int // color budget for solution questions
	Structure string
	Chi       int

	Coloring []int

	Contenders []string
}

// Graph rebuilds the adjacency structure for this instance.
func (g *GraphInstance) Graph() *graphcolor.Graph {
	return graphcolor.New(g.V, g.Edges)
}

// KnightInstance parameterizes Knight's Tour questions. Path and Next are
// set only for next-move validation questions.
type KnightInstance struct {
	Rows, Cols int
	Start      knight.Square

	Path []knight.Square
	Next *knight.Square

	Contenders []string
}

// MinimaxInstance parameterizes minimax questions.
type MinimaxInstance struct {
	Root  *minimax.Node
	Depth int
}

func (*QueensInstance) instance()  {}
func (*HanoiInstance) instance()   {}
func (*GraphInstance) instance()   {}
func (*KnightInstance) instance()  {}
func (*MinimaxInstance) instance() {}

// Question is an immutable generated question. Answer holds the canonical
// answer when the question has a single correct value; Reference holds a
// computed reference solution when one exists.
type Question struct {
	ID        string
	Topic     Topic
	Kind      Kind
	Template  string
	Prompt    string
	Hint      string
	Instance  Instance
	Answer    string
	Reference string
}

// FormatIntList renders values as the literal list answers are written in,
// e.g. [1,3,0,2].
func FormatIntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// FormatPairList renders pairs as [[a,b],[c,d]].
func FormatPairList(pairs [][2]int) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("[%d,%d]", p[0], p[1])
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// FormatSquareList renders a knight path as [[r,c],[r,c]].
func FormatSquareList(path []knight.Square) string {
	pairs := make([][2]int, len(path))
	for i, sq := range path {
		pairs[i] = [2]int{sq.R, sq.C}
	}
	return FormatPairList(pairs)
}
