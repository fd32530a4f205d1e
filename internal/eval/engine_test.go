package eval

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmauRobert/SmartTest/internal/puzzles/graphcolor"
	"github.com/SmauRobert/SmartTest/internal/puzzles/hanoi"
	"github.com/SmauRobert/SmartTest/internal/puzzles/knight"
	"github.com/SmauRobert/SmartTest/internal/puzzles/minimax"
	"github.com/SmauRobert/SmartTest/internal/quiz"
)

func testEngine() *Engine {
	cfg := DefaultConfig()
	cfg.NewRand = func() *rand.Rand { return rand.New(rand.NewSource(1)) }
	return NewEngine(cfg)
}

func feedback(res *Result) string {
	return strings.Join(res.Feedback, "\n")
}

func TestNewEngineCoversEveryTemplate(t *testing.T) {
	// NewEngine panics when a registered template has no evaluator.
	require.NotPanics(t, func() { NewEngine(DefaultConfig()) })
}

func TestEvaluateRecoversFromPanic(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicMinimax,
		Kind:     quiz.KindSolution,
		Template: "no_such_template",
		Instance: &quiz.MinimaxInstance{Root: &minimax.Node{Value: 1}},
	}
	res := e.Evaluate(q, "1")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "internal error while grading")
}

func TestEvaluateFillsReference(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:     quiz.TopicNQueens,
		Kind:      quiz.KindSolution,
		Template:  "queens_solution",
		Instance:  &quiz.QueensInstance{N: 4},
		Reference: "[1,3,0,2]",
	}
	res := e.Evaluate(q, "[0,1,2,3]")
	assert.Equal(t, "[1,3,0,2]", res.Reference)
	assert.Contains(t, res.FeedbackText(), "Reference solution: [1,3,0,2]")
}

func TestQueensSolution(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicNQueens,
		Kind:     quiz.KindSolution,
		Template: "queens_solution",
		Instance: &quiz.QueensInstance{N: 4},
	}

	tests := []struct {
		name      string
		ans       string
		wantScore int
		wantLine  string
	}{
		{"valid solution", "[1,3,0,2]", 100, "✓ Valid solution provided!"},
		{"attacking queens", "[0,1,2,3]", 0, "queens can attack each other"},
		{"wrong length", "[1,3,0]", 0, "exactly 4 positions"},
		{"out of range", "[1,3,0,4]", 0, "between 0 and 3"},
		{"malformed", "[1,3,", 0, "× Invalid format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Evaluate(q, tt.ans)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantScore == 100, res.IsCorrect)
			assert.Contains(t, feedback(res), tt.wantLine)
		})
	}
}

func TestHanoiMinMoves(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicHanoi,
		Kind:     quiz.KindTheory,
		Template: "hanoi_min_moves",
		Instance: &quiz.HanoiInstance{Disks: 3, Pegs: 3},
	}

	res := e.Evaluate(q, "7")
	assert.Equal(t, 100, res.Score)
	assert.True(t, res.IsCorrect)

	res = e.Evaluate(q, "8")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "The correct answer is 7")

	res = e.Evaluate(q, "seven")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "× Invalid format")
}

func TestHanoiRecursiveStep(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicHanoi,
		Kind:     quiz.KindTheory,
		Template: "hanoi_recursive_step",
		Instance: &quiz.HanoiInstance{Disks: 5, Pegs: 3},
	}

	for _, ans := range []string{"B", "b", "auxiliary"} {
		res := e.Evaluate(q, ans)
		assert.Equal(t, 100, res.Score, "answer %q", ans)
	}
	res := e.Evaluate(q, "C")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "The 3-step solution is:")
}

func TestHanoiFourthPeg(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicHanoi,
		Kind:     quiz.KindTheory,
		Template: "hanoi_fourth_peg",
		Instance: &quiz.HanoiInstance{Disks: 30, Pegs: 4},
	}

	assert.Equal(t, 100, e.Evaluate(q, "Decreases").Score)
	assert.Equal(t, 0, e.Evaluate(q, "Increases").Score)
}

func TestHanoiMoveValidation(t *testing.T) {
	e := testEngine()
	newQ := func(state [][]int, from, to int) *quiz.Question {
		return &quiz.Question{
			Topic:    quiz.TopicHanoi,
			Kind:     quiz.KindValidation,
			Template: "hanoi_move_validation",
			Instance: &quiz.HanoiInstance{Disks: 3, Pegs: 3, State: state, From: from, To: to},
		}
	}

	valid := newQ([][]int{{3, 2, 1}, {}, {}}, 0, 1)
	res := e.Evaluate(valid, "yes")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "valid move")
	assert.Equal(t, 0, e.Evaluate(valid, "no").Score)

	sizeViolation := newQ([][]int{{3, 2}, {1}, {}}, 0, 1)
	res = e.Evaluate(sizeViolation, "no")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "cannot place disk 2 on top of the smaller disk 1")

	emptySource := newQ([][]int{{3, 2, 1}, {}, {}}, 1, 0)
	res = e.Evaluate(emptySource, "no")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "Peg B is empty")
}

func TestHanoiSolution(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicHanoi,
		Kind:     quiz.KindSolution,
		Template: "hanoi_solution",
		Instance: &quiz.HanoiInstance{Disks: 3, Pegs: 3, Source: 0, Target: 2},
	}

	optimal := hanoi.SolveRecursive(3)
	pairs := make([][2]int, len(optimal))
	for i, m := range optimal {
		pairs[i] = [2]int{m.From, m.To}
	}

	res := e.Evaluate(q, quiz.FormatPairList(pairs))
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "optimal solution")

	// Two wasted moves: 9 moves against the optimal 7, still within 1.5x.
	wasteful := append(append([][2]int{}, pairs...), [2]int{2, 1}, [2]int{1, 2})
	res = e.Evaluate(q, quiz.FormatPairList(wasteful))
	assert.Equal(t, 80, res.Score)
	assert.Contains(t, feedback(res), "Optimal solution uses 7 moves")

	res = e.Evaluate(q, "[[1,2]]")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "illegal")

	res = e.Evaluate(q, "[[0,1]]")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "do not finish")

	res = e.Evaluate(q, "[[0,5]]")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "Pegs must be between 0 and 2")
}

func TestGraphChromaticName(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicGraphColoring,
		Kind:     quiz.KindTheory,
		Template: "graph_chromatic_name",
		Instance: &quiz.GraphInstance{},
		Answer:   "Chromatic Number",
	}

	assert.Equal(t, 100, e.Evaluate(q, "chromatic number").Score)
	assert.Equal(t, 100, e.Evaluate(q, "the chromatic number").Score)
	assert.Equal(t, 0, e.Evaluate(q, "clique number").Score)
}

func TestGraphChromaticNumber(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicGraphColoring,
		Kind:     quiz.KindTheory,
		Template: "graph_chromatic_number",
		Instance: &quiz.GraphInstance{V: 5, Chi: 3, Structure: "an odd cycle"},
	}

	res := e.Evaluate(q, "3")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "an odd cycle")

	res = e.Evaluate(q, "2")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "The correct answer is 3")
}

func cycleInstance(coloring []int) *quiz.GraphInstance {
	return &quiz.GraphInstance{
		V: 4,
		Edges: []graphcolor.Edge{
			{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
		},
		Colors:   3,
		Chi:      2,
		Coloring: coloring,
	}
}

func TestGraphValidation(t *testing.T) {
	e := testEngine()
	newQ := func(coloring []int) *quiz.Question {
		return &quiz.Question{
			Topic:    quiz.TopicGraphColoring,
			Kind:     quiz.KindValidation,
			Template: "graph_coloring_validation",
			Instance: cycleInstance(coloring),
		}
	}

	res := e.Evaluate(newQ([]int{0, 1, 0, 1}), "yes")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "All adjacent nodes have different colors")

	res = e.Evaluate(newQ([]int{0, 0, 1, 1}), "no")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "adjacent but both have color 0")

	assert.Equal(t, 0, e.Evaluate(newQ([]int{0, 0, 1, 1}), "yes").Score)
}

func TestGraphSolution(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicGraphColoring,
		Kind:     quiz.KindSolution,
		Template: "graph_coloring_solution",
		Instance: cycleInstance(nil),
	}

	res := e.Evaluate(q, "[0,1,0,1]")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "Used only 2 colors")

	res = e.Evaluate(q, "[0,1,0,2]")
	assert.Equal(t, 90, res.Score)

	res = e.Evaluate(q, "[0,0,1,1]")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "Invalid coloring")

	res = e.Evaluate(q, "[0,1,0]")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "all 4 vertices")

	res = e.Evaluate(q, "[0,1,0,3]")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "between 0 and 2")
}

func TestKnightTheory(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicKnightsTour,
		Kind:     quiz.KindTheory,
		Template: "knight_warnsdorff_name",
		Instance: &quiz.KnightInstance{Rows: 6, Cols: 6},
		Answer:   "Warnsdorff's Rule",
	}

	assert.Equal(t, 100, e.Evaluate(q, "Warnsdorff's rule").Score)
	assert.Equal(t, 100, e.Evaluate(q, "warnsdorf rule").Score)
	assert.Equal(t, 0, e.Evaluate(q, "minimax").Score)
}

func TestKnightValidation(t *testing.T) {
	e := testEngine()
	newQ := func(path []knight.Square, next knight.Square) *quiz.Question {
		return &quiz.Question{
			Topic:    quiz.TopicKnightsTour,
			Kind:     quiz.KindValidation,
			Template: "knight_move_validation",
			Instance: &quiz.KnightInstance{Rows: 5, Cols: 5, Path: path, Next: &next},
		}
	}
	path := []knight.Square{{R: 0, C: 0}, {R: 2, C: 1}}

	res := e.Evaluate(newQ(path, knight.Square{R: 1, C: 3}), "yes")
	assert.Equal(t, 100, res.Score)

	res = e.Evaluate(newQ(path, knight.Square{R: 0, C: 0}), "no")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "already been visited")

	res = e.Evaluate(newQ(path, knight.Square{R: 2, C: 3}), "no")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "not a valid L-shape")

	res = e.Evaluate(newQ([]knight.Square{{R: 4, C: 4}}, knight.Square{R: 6, C: 5}), "no")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "outside the board")
}

func TestKnightSolution(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicKnightsTour,
		Kind:     quiz.KindSolution,
		Template: "knight_find_tour",
		Instance: &quiz.KnightInstance{Rows: 5, Cols: 5, Start: knight.Square{R: 0, C: 0}},
	}

	tour, ok := knight.SolveWarnsdorff(5, 5, knight.Square{R: 0, C: 0})
	require.True(t, ok)

	res := e.Evaluate(q, quiz.FormatSquareList(tour))
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "✓ Valid knight's tour found!")

	res = e.Evaluate(q, "[[1,2],[0,0]]")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "must start at (0, 0)")

	res = e.Evaluate(q, "[[0,0],[1,2]]")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "Invalid tour")
}

func TestMinimaxRootValue(t *testing.T) {
	e := testEngine()
	root := &minimax.Node{Children: []*minimax.Node{
		{Children: []*minimax.Node{{Value: 3}, {Value: 7}}},
		{Children: []*minimax.Node{{Value: 2}, {Value: 9}}},
	}}
	q := &quiz.Question{
		Topic:    quiz.TopicMinimax,
		Kind:     quiz.KindSolution,
		Template: "minimax_root_value",
		Instance: &quiz.MinimaxInstance{Root: root, Depth: 3},
	}

	assert.Equal(t, 100, e.Evaluate(q, "3").Score)
	res := e.Evaluate(q, "9")
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, feedback(res), "The correct answer is 3")
}

func TestMinimaxLeafCount(t *testing.T) {
	e := testEngine()
	root := &minimax.Node{Children: []*minimax.Node{
		{Children: []*minimax.Node{{Value: 3}, {Value: 7}}},
		{Children: []*minimax.Node{{Value: 2}, {Value: 9}}},
	}}
	q := &quiz.Question{
		Topic:    quiz.TopicMinimax,
		Kind:     quiz.KindSolution,
		Template: "minimax_leaf_count",
		Instance: &quiz.MinimaxInstance{Root: root, Depth: 3},
	}

	// Leaves 3, 7, then 2 prunes the second subtree.
	res := e.Evaluate(q, "3")
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, feedback(res), "[3,7,2]")
	assert.Equal(t, 0, e.Evaluate(q, "4").Score)
}

func TestKeywordScoring(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicNQueens,
		Kind:     quiz.KindAnalysis,
		Template: "queens_complexity",
		Instance: &quiz.QueensInstance{N: 4},
	}

	full := "The backtracking solution is O(N!) because it is recursive and prunes; for N=4 that is 4! orderings and there are 2 solutions."
	res := e.Evaluate(q, full)
	assert.Equal(t, 100, res.Score)
	assert.True(t, res.IsCorrect)
	assert.Contains(t, feedback(res), "✓ Excellent understanding!")

	partial := "It uses recursive backtracking."
	res = e.Evaluate(q, partial)
	assert.Equal(t, 40, res.Score)
	assert.False(t, res.IsCorrect)
	assert.Contains(t, feedback(res), "Suggested improvements:")
	assert.Contains(t, feedback(res), "× Missing discussion of time complexity")
}

func TestRaceGrading(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicHanoi,
		Kind:     quiz.KindRace,
		Template: "hanoi_race",
		Instance: &quiz.HanoiInstance{
			Disks:      12,
			Pegs:       3,
			Contenders: []string{"Recursive", "Iterative", "Binary Pattern"},
		},
	}

	res := e.Evaluate(q, "Recursive")
	require.Contains(t, []int{0, 100}, res.Score)
	fb := feedback(res)
	assert.Contains(t, fb, "The fastest algorithm for this instance was")
	assert.Contains(t, fb, "--- Results ---")
	if res.Score == 100 {
		assert.Contains(t, fb, "Correct!")
	} else {
		assert.Contains(t, fb, "Your answer was 'Recursive'.")
	}
}

func TestKnightRaceGrading(t *testing.T) {
	e := testEngine()
	q := &quiz.Question{
		Topic:    quiz.TopicKnightsTour,
		Kind:     quiz.KindRace,
		Template: "knight_race",
		Instance: &quiz.KnightInstance{
			Rows:       5,
			Cols:       5,
			Start:      knight.Square{R: 0, C: 0},
			Contenders: []string{"Warnsdorff's Rule", "Random Walk"},
		},
	}

	res := e.Evaluate(q, "Warnsdorff's Rule")
	require.Contains(t, []int{0, 100}, res.Score)
	assert.Contains(t, feedback(res), "--- Results ---")
}

func TestFeedbackText(t *testing.T) {
	res := &Result{Feedback: []string{"line one", "line two"}}
	assert.Equal(t, "line one\nline two", res.FeedbackText())

	res.Reference = "[1,3,0,2]"
	assert.Equal(t, "line one\nline two\n\nReference solution: [1,3,0,2]", res.FeedbackText())
}
