package eval

import (
	"context"
	"fmt"
	"slices"

	"github.com/SmauRobert/SmartTest/internal/answer"
	"github.com/SmauRobert/SmartTest/internal/puzzles/queens"
	"github.com/SmauRobert/SmartTest/internal/quiz"
)

func evaluateQueensSolution(e *Engine, q *quiz.Question, ans string) *Result {
	inst := q.Instance.(*quiz.QueensInstance)
	n := inst.N

	rows, err := answer.IntList(ans)
	if err != nil {
		return malformed(err)
	}
	if len(rows) != n {
		return &Result{Score: 0, Feedback: []string{
			fmt.Sprintf("Solution must contain exactly %d positions", n),
		}}
	}
	for _, r := range rows {
		if r < 0 || r >= n {
			return &Result{Score: 0, Feedback: []string{
				fmt.Sprintf("All positions must be integers between 0 and %d", n-1),
			}}
		}
	}

	if !queens.ValidPlacement(n, rows) {
		return &Result{Score: 0, Feedback: []string{
			"× Invalid solution - queens can attack each other",
			"",
			"Checks performed:",
			"- Row attacks",
			"- Diagonal attacks",
			"",
			"Try visualizing your solution on a chessboard",
		}}
	}

	feedback := []string{"✓ Valid solution provided!"}

	// A bounded parallel search for reference solutions to compare against.
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.QueensSearchTimeout)
	defer cancel()
	known := queens.FindSolutions(ctx, n, e.cfg.QueensSolutionCap)

	if len(known) > 0 {
		if slices.ContainsFunc(known, func(s []int) bool { return slices.Equal(s, rows) }) {
			feedback = append(feedback, "✓ Your solution matches one of our known solutions")
		} else {
			feedback = append(feedback, "✓ You found a different valid solution!")
			feedback = append(feedback, "Reference solution: "+quiz.FormatIntList(known[0]))
		}
	}
	return &Result{Score: 100, Feedback: feedback, IsCorrect: true}
}

func evaluateQueensAnalysis(e *Engine, q *quiz.Question, ans string) *Result {
	inst := q.Instance.(*quiz.QueensInstance)
	keywords := []keyword{
		{"O(N!)", "time complexity"},
		{"recursive", "recursive nature"},
		{"backtrack", "backtracking concept"},
		{fmt.Sprintf("%d!", inst.N), "specific case analysis"},
		{"solutions", "multiple solutions discussion"},
	}
	return scoreKeywords(ans, keywords, 80, []string{
		"Discuss both time and space complexity",
		"Explain why it's factorial complexity",
		"Mention how branching factor affects the search space",
	})
}
