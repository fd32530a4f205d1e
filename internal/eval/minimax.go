package eval

import (
	"fmt"

	"github.com/SmauRobert/SmartTest/internal/answer"
	"github.com/SmauRobert/SmartTest/internal/puzzles/minimax"
	"github.com/SmauRobert/SmartTest/internal/quiz"
)

func evaluateMinimax(e *Engine, q *quiz.Question, ans string) *Result {
	inst := q.Instance.(*quiz.MinimaxInstance)
	value, visited := minimax.AlphaBeta(inst.Root)

	n, err := answer.Int(ans)
	if err != nil {
		return malformed(err)
	}

	switch q.Template {
	case "minimax_root_value":
		if n != value {
			return wrongAnswer(ans, fmt.Sprint(value), "")
		}
		return &Result{
			Score: 100,
			Feedback: []string{
				fmt.Sprintf("Correct! The Minimax algorithm with Alpha-Beta Pruning yields the root value of %d.", value),
			},
			IsCorrect: true,
		}

	case "minimax_leaf_count":
		detail := fmt.Sprintf("With pruning, %d leaves are visited, those being the leaves with the values: %s.",
			len(visited), quiz.FormatIntList(visited))
		if n != len(visited) {
			return wrongAnswer(ans, fmt.Sprint(len(visited)), detail)
		}
		return &Result{
			Score:     100,
			Feedback:  []string{"Correct! " + detail},
			IsCorrect: true,
		}

	default:
		panic("unknown minimax template: " + q.Template)
	}
}
