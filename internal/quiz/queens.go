package quiz

import (
	"fmt"
	"math/rand"

	"github.com/SmauRobert/SmartTest/internal/puzzles/queens"
)

var queensTemplates = []Template{
	{
		ID:       "queens_solution",
		Topic:    TopicNQueens,
		Kind:     KindSolution,
		Generate: generateQueensSolution,
	},
	{
		ID:       "queens_complexity",
		Topic:    TopicNQueens,
		Kind:     KindAnalysis,
		Generate: generateQueensComplexity,
	},
}

func generateQueensSolution(rng *rand.Rand) *Question {
	n := 4 + rng.Intn(5) // 4-8, always solvable

	var reference string
	if rows, ok := queens.SolveBacktracking(n); ok {
		reference = FormatIntList(rows)
	}

	return stamp("queens_solution", TopicNQueens, KindSolution, Question{
		Prompt: fmt.Sprintf(
			"Find a valid solution for the %d-Queens problem. Place %d queens on a %dx%d chessboard so that no two queens threaten each other.",
			n, n, n, n),
		Hint: fmt.Sprintf(
			"Provide a list in format: [r1,r2,...,r%d] where each number is the row (0 to %d) of the queen in that column.",
			n, n-1),
		Instance:  &QueensInstance{N: n},
		Reference: reference,
	})
}

func generateQueensComplexity(rng *rand.Rand) *Question {
	n := 4 + rng.Intn(5)

	return stamp("queens_complexity", TopicNQueens, KindAnalysis, Question{
		Prompt: fmt.Sprintf(
			"For the %d-Queens problem:\n1. What is the time complexity of the backtracking solution?\n2. How many valid solutions exist for N=%d?",
			n, n),
		Hint:     "Structure your answer as:\nTime Complexity: O(...)\nNumber of Solutions: ...\nExplanation: ...",
		Instance: &QueensInstance{N: n},
	})
}
